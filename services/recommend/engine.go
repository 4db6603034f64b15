package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"mahatta/models"
	"mahatta/services/catalog"
	ai "mahatta/services/intelligence"

	"go.uber.org/zap"
)

// Engine is the Recommendation Engine: a pure catalog filter plus best-effort framing text.
type Engine struct {
	catalog   catalog.Catalog
	generator ai.Generator
	timeout   time.Duration
	logger    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Engine)

// WithRand fixes the source used by Shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func NewEngine(cat catalog.Catalog, generator ai.Generator, timeout time.Duration, logger *zap.Logger, opts ...Option) *Engine {
	if generator == nil {
		generator = ai.Disabled{}
	}
	e := &Engine{
		catalog:   cat,
		generator: generator,
		timeout:   timeout,
		logger:    logger.With(zap.String("component", "recommend")),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend filters the catalog by prefs.
func (e *Engine) Recommend(prefs models.Preferences) []models.Wallpaper {
	all := e.catalog.All()
	results, stages := Explain(prefs, all)
	if e.logger.Core().Enabled(zap.DebugLevel) {
		e.logger.Debug("Narrowed catalog",
			zap.Any("preferences", prefs),
			zap.Any("stages", stages),
			zap.Int("survivors", len(results)),
		)
	}
	return settle(results, all)
}

// Shuffle picks up to n random catalog entries, ignoring preferences.
func (e *Engine) Shuffle(n int) []models.Wallpaper {
	all := e.catalog.All()
	if n > len(all) {
		n = len(all)
	}

	e.mu.Lock()
	perm := e.rng.Perm(len(all))
	e.mu.Unlock()

	out := make([]models.Wallpaper, 0, n)
	for _, i := range perm[:n] {
		out = append(out, all[i])
	}
	return out
}

// Rationale asks the text generator why picks fit prefs. Any failure yields "".
func (e *Engine) Rationale(ctx context.Context, prefs models.Preferences, picks []models.Wallpaper) (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Rationale generator panicked", zap.Any("panic", r))
			text = ""
		}
	}()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	text, err := e.generator.Generate(ctx, ai.BuildPrompt(prefs, picks))
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			e.logger.Debug("Rationale request cancelled")
		} else {
			e.logger.Warn("Rationale generation failed; using fallback text", zap.Error(err))
		}
		return ""
	}
	return text
}

// FallbackIntro frames the results when no generated rationale is available.
func FallbackIntro(prefs models.Preferences, n int) string {
	plural := ""
	if n > 1 {
		plural = "s"
	}
	return fmt.Sprintf("I've curated %d wallpaper%s that match your %s %s vision! ✨",
		n, plural, strings.ToLower(prefs.Mood), strings.ToLower(prefs.Room))
}
