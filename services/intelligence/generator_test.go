package ai

import (
	"context"
	"testing"
	"time"

	"mahatta/config"
	"mahatta/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFromConfigWithoutKeyIsDisabled(t *testing.T) {
	gen, err := NewFromConfig(context.Background(), config.Config{}, zap.NewNop())
	require.NoError(t, err)
	require.IsType(t, Disabled{}, gen)

	text, err := gen.Generate(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Empty(t, text)
}

func TestNewFromConfigSelectsTransport(t *testing.T) {
	cfg := config.Config{
		FallbackAPIKey:  "key",
		GeminiModel:     "gemini-2.0-flash",
		GeminiEndpoint:  "https://generativelanguage.googleapis.com/v1beta",
		GeminiTransport: "rest",
		GeminiTimeout:   time.Second,
	}
	gen, err := NewFromConfig(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &GeminiRESTClient{}, gen)

	cfg.GeminiTransport = "carrier-pigeon"
	_, err = NewFromConfig(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prefs := models.Preferences{Room: "Bedroom", Patterns: []string{"Modern", "Abstract"}, Colors: []string{"Navy Blue"}, Mood: "Bold"}
	picks := []models.Wallpaper{{Name: "Abstract Fringed Vertical Blue"}, {Name: "Geometric Pattern Teal Pink"}}

	prompt := BuildPrompt(prefs, picks)
	assert.Contains(t, prompt, "wallpapers for their Bedroom")
	assert.Contains(t, prompt, "They like Modern, Abstract patterns")
	assert.Contains(t, prompt, "prefer Navy Blue colors")
	assert.Contains(t, prompt, "want a Bold feel")
	assert.Contains(t, prompt, "Abstract Fringed Vertical Blue, Geometric Pattern Teal Pink")
	assert.Contains(t, prompt, `Start with "I've curated..."`)
}

func TestBuildPromptDefaults(t *testing.T) {
	prompt := BuildPrompt(models.Preferences{Room: "Office"}, nil)
	assert.Contains(t, prompt, "They like various patterns")
	assert.Contains(t, prompt, "prefer neutral colors")
	assert.Contains(t, prompt, "want a balanced feel")
}
