package models

import (
	"fmt"
	"strings"
)

// Creativity is the user-facing knob that selects sampling parameters.
type Creativity string

const (
	CreativityLow    Creativity = "Low"
	CreativityMedium Creativity = "Medium"
	CreativityHigh   Creativity = "High"
)

// Creativities lists the levels in the order the page shows them.
var Creativities = []Creativity{CreativityLow, CreativityMedium, CreativityHigh}

// ParseCreativity accepts any casing. An empty value means Medium.
func ParseCreativity(s string) (Creativity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CreativityMedium, nil
	case "low":
		return CreativityLow, nil
	case "medium":
		return CreativityMedium, nil
	case "high":
		return CreativityHigh, nil
	default:
		return "", fmt.Errorf("unknown creativity level %q", s)
	}
}

// ModelConfig holds the sampling parameters sent with every model call.
type ModelConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"top_p"`
	TopK            int     `json:"top_k"`
	MaxOutputTokens int     `json:"max_output_tokens"`
}

var creativityTable = map[Creativity]ModelConfig{
	CreativityLow:    {Temperature: 0.2, TopP: 0.8, TopK: 40},
	CreativityMedium: {Temperature: 0.5, TopP: 0.9, TopK: 40},
	CreativityHigh:   {Temperature: 0.9, TopP: 0.95, TopK: 40},
}

// ModelConfigFor returns the table entry for c with the given output token cap.
// Unknown levels fall back to Medium.
func ModelConfigFor(c Creativity, maxOutputTokens int) ModelConfig {
	mc, ok := creativityTable[c]
	if !ok {
		mc = creativityTable[CreativityMedium]
	}
	mc.MaxOutputTokens = maxOutputTokens
	return mc
}
