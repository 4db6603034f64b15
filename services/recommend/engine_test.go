package recommend

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"mahatta/models"
	"mahatta/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var bedroomPrefs = models.Preferences{Room: "Bedroom", Patterns: []string{"Modern"}, Colors: []string{"Navy Blue"}, Mood: "Bold"}

func TestEngineRecommendMatchesFilter(t *testing.T) {
	cat := catalog.Default()
	e := NewEngine(cat, nil, time.Second, zap.NewNop())
	assert.Equal(t, Filter(bedroomPrefs, cat.All()), e.Recommend(bedroomPrefs))
}

func TestEngineShuffle(t *testing.T) {
	cat := catalog.Default()
	e := NewEngine(cat, nil, time.Second, zap.NewNop(), WithRand(rand.New(rand.NewSource(7))))

	picks := e.Shuffle(3)
	require.Len(t, picks, 3)
	seen := map[string]bool{}
	for _, w := range picks {
		assert.False(t, seen[w.ID], "duplicate %s", w.ID)
		seen[w.ID] = true
		_, err := cat.ByID(w.ID)
		assert.NoError(t, err)
	}

	assert.Len(t, e.Shuffle(50), 6)
}

func TestEngineRationale(t *testing.T) {
	var gotPrompt string
	gen := generatorFunc(func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "I've curated bold pieces for you.", nil
	})
	e := NewEngine(catalog.Default(), gen, time.Second, zap.NewNop())

	text := e.Rationale(context.Background(), bedroomPrefs, e.Recommend(bedroomPrefs))
	assert.Equal(t, "I've curated bold pieces for you.", text)
	assert.Contains(t, gotPrompt, "Bedroom")
}

func TestEngineRationaleFailuresYieldEmpty(t *testing.T) {
	tests := map[string]generatorFunc{
		"error": func(context.Context, string) (string, error) {
			return "", errors.New("boom")
		},
		"panic": func(context.Context, string) (string, error) {
			panic("generator exploded")
		},
		"timeout": func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	for name, gen := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine(catalog.Default(), gen, 20*time.Millisecond, zap.NewNop())
			assert.Empty(t, e.Rationale(context.Background(), bedroomPrefs, nil))
		})
	}
}

func TestFallbackIntro(t *testing.T) {
	assert.Equal(t, "I've curated 3 wallpapers that match your bold bedroom vision! ✨", FallbackIntro(bedroomPrefs, 3))
	assert.Equal(t, "I've curated 1 wallpaper that match your calm office vision! ✨",
		FallbackIntro(models.Preferences{Room: "Office", Mood: "Calm"}, 1))
}
