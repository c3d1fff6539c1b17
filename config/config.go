package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rss-summarizer/internal/logger"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	DefaultFeedURL         = "https://www.bleepingcomputer.com/feed/"
	DefaultMaxPosts        = 10
	DefaultMaxOutputTokens = 256
	DefaultModelName       = "gemini-2.0-flash"
	DefaultLocation        = "us-central1"
)

// Topic policies for labels outside the taxonomy.
const (
	TopicPolicyPassthrough = "passthrough"
	TopicPolicyCoerce      = "coerce"
)

type AppConfig struct {
	Logging      LoggingConfig      `yaml:"logging"`
	Server       ServerConfig       `yaml:"server"`
	Feed         FeedConfig         `yaml:"feed"`
	Retriever    RetrieverConfig    `yaml:"retriever"`
	LLM          LLMConfig          `yaml:"llm"`
	SummaryQuota SummaryQuotaConfig `yaml:"summary_quota"`
	Presenter    PresenterConfig    `yaml:"presenter"`
	Mongo        MongoConfig        `yaml:"mongo"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr               string   `yaml:"addr"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// FeedConfig controls fetching and ranking of feed entries.
type FeedConfig struct {
	DefaultURL     string `yaml:"default_url"`
	MaxPosts       int    `yaml:"max_posts"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// UseUpdatedFallback lets entries without published/pubDate rank by their updated field.
	UseUpdatedFallback bool `yaml:"use_updated_fallback"`
	// LenientDates tries a free-form date parser after the fixed layouts fail.
	LenientDates bool `yaml:"lenient_dates"`
}

type RetrieverConfig struct {
	// Renderer is "http" (plain GET) or "chrome" (headless chromedp).
	Renderer string `yaml:"renderer"`
	// Extractor is "readability", "trafilatura", "goose" or "paragraphs".
	Extractor       string `yaml:"extractor"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	MaxContentChars int    `yaml:"max_content_chars"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
	// Backend is "vertex" (service account) or "gemini" (API key).
	Backend         string `yaml:"backend"`
	ModelName       string `yaml:"model_name"`
	Project         string `yaml:"project"`
	Location        string `yaml:"location"`
	CredentialsFile string `yaml:"credentials_file"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
	Classify        *bool  `yaml:"classify"`
	TopicPolicy     string `yaml:"topic_policy"`

	// Secrets are never read from the yaml file.
	APIKey          string `yaml:"-"`
	CredentialsJSON string `yaml:"-"`
}

// ClassifyEnabled reports whether the topic step runs. It defaults to true.
func (c LLMConfig) ClassifyEnabled() bool {
	return c.Classify == nil || *c.Classify
}

// SummaryQuotaConfig limits summarization calls. Values <= 0 mean no limit.
type SummaryQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type PresenterConfig struct {
	ShowFailures bool `yaml:"show_failures"`
}

// MongoConfig enables the model-call audit log when URI is set.
type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

var config *AppConfig

// InitApp loads .env and config.yaml from the base path and panics if the
// configuration cannot be read.
func InitApp() {
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = c
}

// Load reads one yaml file, applies defaults and environment overrides, and validates.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	applyDefaults(&c)
	applyEnvironmentOverrides(&c)

	if err := validate(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// SetConfig replaces the process configuration. Tests use it to avoid touching disk.
func SetConfig(c AppConfig) {
	config = &c
}

// InitLogger points the global logger at the configured level.
func InitLogger(cfg LoggingConfig) {
	logger.Init(cfg.Level)
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(c *AppConfig) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Feed.DefaultURL == "" {
		c.Feed.DefaultURL = DefaultFeedURL
	}
	if c.Feed.MaxPosts <= 0 {
		c.Feed.MaxPosts = DefaultMaxPosts
	}
	if c.Feed.TimeoutSeconds <= 0 {
		c.Feed.TimeoutSeconds = 30
	}
	if c.Retriever.Renderer == "" {
		c.Retriever.Renderer = "http"
	}
	if c.Retriever.Extractor == "" {
		c.Retriever.Extractor = "readability"
	}
	if c.Retriever.TimeoutSeconds <= 0 {
		c.Retriever.TimeoutSeconds = 30
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "google"
	}
	if c.LLM.Backend == "" {
		c.LLM.Backend = "vertex"
	}
	if c.LLM.ModelName == "" {
		c.LLM.ModelName = DefaultModelName
	}
	if c.LLM.Location == "" {
		c.LLM.Location = DefaultLocation
	}
	if c.LLM.MaxOutputTokens <= 0 {
		c.LLM.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if c.LLM.TopicPolicy == "" {
		c.LLM.TopicPolicy = TopicPolicyPassthrough
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "rss_summarizer"
	}
}

func applyEnvironmentOverrides(c *AppConfig) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("GCP_CREDENTIALS_JSON"); v != "" {
		c.LLM.CredentialsJSON = v
	}
	if v := os.Getenv("GOOGLE_CLOUD_PROJECT"); v != "" {
		c.LLM.Project = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
}

func validate(c *AppConfig) error {
	if c.LLM.Provider != "google" {
		return fmt.Errorf("unsupported LLM provider: %s", c.LLM.Provider)
	}
	switch strings.ToLower(c.LLM.Backend) {
	case "vertex", "gemini":
	default:
		return fmt.Errorf("unsupported LLM backend: %s", c.LLM.Backend)
	}
	switch c.LLM.TopicPolicy {
	case TopicPolicyPassthrough, TopicPolicyCoerce:
	default:
		return fmt.Errorf("unsupported topic_policy: %s", c.LLM.TopicPolicy)
	}
	switch c.Retriever.Renderer {
	case "http", "chrome":
	default:
		return fmt.Errorf("unsupported retriever.renderer: %s", c.Retriever.Renderer)
	}
	switch c.Retriever.Extractor {
	case "readability", "trafilatura", "goose", "paragraphs":
	default:
		return fmt.Errorf("unsupported retriever.extractor: %s", c.Retriever.Extractor)
	}
	return nil
}
