package chat

import (
	"context"
	"sync"

	"mahatta/models"
)

// Recommender is the part of the recommendation engine a session drives.
type Recommender interface {
	Recommend(prefs models.Preferences) []models.Wallpaper
	Shuffle(n int) []models.Wallpaper
	Rationale(ctx context.Context, prefs models.Preferences, picks []models.Wallpaper) string
}

type Cart interface {
	AddToCart(ctx context.Context, shopperID string, w models.Wallpaper) error
}

type Wishlist interface {
	Toggle(ctx context.Context, shopperID, wallpaperID string) (bool, error)
	IDs(ctx context.Context, shopperID string) ([]string, error)
}

// Navigator moves the shopper away from the assistant.
type Navigator interface {
	NavigateToListing(filterType, filterValue string)
	NavigateToCart()
}

// DirectiveQueue is a Navigator that records navigations for the client to pick up.
type DirectiveQueue struct {
	mu    sync.Mutex
	queue []models.Directive
}

func (q *DirectiveQueue) NavigateToListing(filterType, filterValue string) {
	q.push(models.Directive{Type: models.DirectiveListing, FilterType: filterType, FilterValue: filterValue})
}

func (q *DirectiveQueue) NavigateToCart() {
	q.push(models.Directive{Type: models.DirectiveCart})
}

func (q *DirectiveQueue) push(d models.Directive) {
	q.mu.Lock()
	q.queue = append(q.queue, d)
	q.mu.Unlock()
}

// Peek returns the queued directives without consuming them.
func (q *DirectiveQueue) Peek() []models.Directive {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.Directive(nil), q.queue...)
}

// Drain returns and forgets the queued directives.
func (q *DirectiveQueue) Drain() []models.Directive {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.queue
	q.queue = nil
	return out
}

type nopCart struct{}

func (nopCart) AddToCart(context.Context, string, models.Wallpaper) error { return nil }

type nopWishlist struct{}

func (nopWishlist) Toggle(context.Context, string, string) (bool, error) { return false, nil }

func (nopWishlist) IDs(context.Context, string) ([]string, error) { return nil, nil }
