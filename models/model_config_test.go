package models_test

import (
	"testing"

	"rss-summarizer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreativity(t *testing.T) {
	cases := map[string]models.Creativity{
		"":       models.CreativityMedium,
		"low":    models.CreativityLow,
		" High ": models.CreativityHigh,
		"MEDIUM": models.CreativityMedium,
	}
	for in, want := range cases {
		got, err := models.ParseCreativity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := models.ParseCreativity("extreme")
	assert.Error(t, err)
}

func TestModelConfigFor(t *testing.T) {
	low := models.ModelConfigFor(models.CreativityLow, 256)
	high := models.ModelConfigFor(models.CreativityHigh, 256)

	assert.Equal(t, 256, low.MaxOutputTokens)
	assert.Less(t, low.Temperature, high.Temperature)
	for _, c := range models.Creativities {
		mc := models.ModelConfigFor(c, 1024)
		assert.GreaterOrEqual(t, mc.Temperature, float32(0))
		assert.LessOrEqual(t, mc.Temperature, float32(1))
		assert.LessOrEqual(t, mc.TopP, float32(1))
		assert.GreaterOrEqual(t, mc.TopK, 1)
	}

	assert.Equal(t, models.ModelConfigFor(models.CreativityMedium, 10),
		models.ModelConfigFor(models.Creativity("bogus"), 10))
}
