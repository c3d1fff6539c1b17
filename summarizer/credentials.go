package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/credentials"
	"google.golang.org/genai"

	"rss-summarizer/config"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

var ErrMissingCredentials = errors.New("no model credentials configured")

// LoadCredentials builds Vertex AI credentials from the inline service account
// JSON or, failing that, the configured credentials file. It returns nil when
// neither is set so the client can fall back to application default credentials.
// Nothing is written to disk and the process environment is left untouched.
func LoadCredentials(cfg config.LLMConfig) (*auth.Credentials, error) {
	raw := []byte(strings.TrimSpace(cfg.CredentialsJSON))
	if len(raw) == 0 && cfg.CredentialsFile != "" {
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		raw = b
	}
	if len(raw) == 0 {
		return nil, nil
	}

	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		Scopes:          []string{cloudPlatformScope},
		CredentialsJSON: raw,
	})
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return creds, nil
}

// ClientConfig maps the LLM settings onto a genai client config.
func ClientConfig(cfg config.LLMConfig) (*genai.ClientConfig, error) {
	switch strings.ToLower(cfg.Backend) {
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrMissingCredentials)
		}
		return &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}, nil
	default:
		if cfg.Project == "" {
			return nil, fmt.Errorf("%w: llm.project is required for the vertex backend", ErrMissingCredentials)
		}
		creds, err := LoadCredentials(cfg)
		if err != nil {
			return nil, err
		}
		return &genai.ClientConfig{
			Backend:     genai.BackendVertexAI,
			Project:     cfg.Project,
			Location:    cfg.Location,
			Credentials: creds,
		}, nil
	}
}

// NewClient builds the process-wide genai client once at start-up.
func NewClient(ctx context.Context, cfg config.LLMConfig) (*genai.Client, error) {
	cc, err := ClientConfig(cfg)
	if err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}
