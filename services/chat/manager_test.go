package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"mahatta/services/catalog"
	"mahatta/services/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	m := NewManager(Deps{
		Engine:  recommend.NewEngine(catalog.Default(), nil, time.Second, zap.NewNop()),
		Catalog: catalog.Default(),
		Clock:   clock,
	}, ttl)
	t.Cleanup(m.Shutdown)
	return m, clock
}

func TestManagerCreateAndGet(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)

	s := m.Create("shopper-9")
	assert.Equal(t, "shopper-9", s.ShopperID())
	assert.Len(t, s.View(context.Background()).Messages, 1)

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	guest := m.Create("")
	assert.True(t, strings.HasPrefix(guest.ShopperID(), "guest-"))
	assert.NotEqual(t, s.ID(), guest.ID())
	assert.Equal(t, 2, m.Len())
}

func TestManagerSessionsHaveSeparateDirectives(t *testing.T) {
	m, clock := newTestManager(t, time.Minute)
	a := m.Create("a")
	b := m.Create("b")
	clock.Flush()

	a.SelectRoom("Bedroom")
	a.TogglePattern("Modern")
	a.ConfirmPatterns()
	a.ToggleColor("Teal")
	a.ConfirmColors()
	a.SelectMood("Calm")
	a.Wait()
	clock.Flush()
	a.HandleQuickAction(ActionViewCart)
	clock.Flush()

	assert.Len(t, a.DrainDirectives(), 1)
	assert.Empty(t, b.DrainDirectives())
}

func TestManagerClose(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	s := m.Create("x")

	require.NoError(t, m.Close(s.ID()))
	assert.True(t, s.View(context.Background()).Closed)
	assert.ErrorIs(t, m.Close(s.ID()), ErrSessionNotFound)
	assert.Zero(t, m.Len())
}

func TestManagerSweepExpiresIdleSessions(t *testing.T) {
	m, clock := newTestManager(t, 30*time.Minute)
	idle := m.Create("idle")

	clock.Advance(20 * time.Minute)
	active := m.Create("active")

	clock.Advance(11 * time.Minute)
	assert.Equal(t, 1, m.Sweep(clock.Now()))

	_, err := m.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(active.ID())
	assert.NoError(t, err)

	active.SelectRoom("Office")
	clock.Advance(29 * time.Minute)
	assert.Zero(t, m.Sweep(clock.Now()))
}

func TestManagerRunStopsWithContext(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
