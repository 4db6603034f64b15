package chat

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mahatta/models"
	"mahatta/services/catalog"
	"mahatta/services/recommend"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps are the collaborators of a session. Engine and Catalog are required.
type Deps struct {
	Engine    Recommender
	Catalog   catalog.Catalog
	Cart      Cart
	Wishlist  Wishlist
	Navigator Navigator
	Clock     Clock
	Pacing    func(time.Duration) time.Duration
	Logger    *zap.Logger
	NewID     func() string
}

// Session is one assistant conversation. Every method is safe for concurrent use; state
// changes happen under a single lock so there is one writer at a time.
type Session struct {
	id        string
	shopperID string

	engine    Recommender
	catalog   catalog.Catalog
	cart      Cart
	wishlist  Wishlist
	navigator Navigator
	clock     Clock
	pacing    func(time.Duration) time.Duration
	logger    *zap.Logger
	newID     func() string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	gen          uint64
	timerSeq     uint64
	timers       map[uint64]*scheduled
	inflight     context.CancelFunc
	step         models.Step
	prefs        models.Preferences
	pending      []string
	messages     []models.Message
	suggested    map[string]bool
	added        map[string]bool
	addedOrder   []string
	closed       bool
	ended        bool
	lastActivity time.Time
}

// scheduled is a paced message waiting for its delay.
type scheduled struct {
	timer Timer
	due   time.Time
	f     func()
}

func NewSession(id, shopperID string, deps Deps) *Session {
	if deps.Cart == nil {
		deps.Cart = nopCart{}
	}
	if deps.Wishlist == nil {
		deps.Wishlist = nopWishlist{}
	}
	if deps.Navigator == nil {
		deps.Navigator = &DirectiveQueue{}
	}
	if deps.Clock == nil {
		deps.Clock = RealClock()
	}
	if deps.Pacing == nil {
		deps.Pacing = func(d time.Duration) time.Duration { return d }
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:           id,
		shopperID:    shopperID,
		engine:       deps.Engine,
		catalog:      deps.Catalog,
		cart:         deps.Cart,
		wishlist:     deps.Wishlist,
		navigator:    deps.Navigator,
		clock:        deps.Clock,
		pacing:       deps.Pacing,
		logger:       deps.Logger.With(zap.String("component", "chat"), zap.String("session", id)),
		newID:        deps.NewID,
		ctx:          ctx,
		cancel:       cancel,
		timers:       make(map[uint64]*scheduled),
		step:         models.StepRoom,
		suggested:    make(map[string]bool),
		added:        make(map[string]bool),
		lastActivity: deps.Clock.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) ShopperID() string { return s.shopperID }

// Start begins the conversation, discarding everything from a previous run.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}

	if s.gen > 0 {
		s.logger.Info("Restarting conversation", zap.Uint64("generation", s.gen+1))
	}
	s.resetLocked()
	s.sayLocked(models.KindText, greetingText, nil)
	s.scheduleLocked(roomPromptDelay, func() {
		s.sayLocked(models.KindRoomOptions, roomPromptText, catalog.RoomOptions)
	})
}

func (s *Session) SelectRoom(room string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opt, ok := catalog.FindOption(catalog.RoomOptions, room)
	if !ok {
		s.ignoreLocked("select room", zap.String("room", room))
		return
	}
	if !s.advanceLocked(evSelectRoom) {
		return
	}

	s.replyLocked(opt.Emoji + " " + room)
	s.prefs.Room = room
	s.pending = nil
	s.scheduleLocked(ackDelay, func() {
		s.sayLocked(models.KindText, roomAckText(room), nil)
	})
	s.scheduleLocked(promptDelay, func() {
		s.sayLocked(models.KindPatternOptions, patternPromptText, catalog.PatternOptions)
	})
}

func (s *Session) TogglePattern(label string) {
	s.toggle(evTogglePattern, catalog.PatternOptions, label)
}

func (s *Session) ToggleColor(label string) {
	s.toggle(evToggleColor, catalog.ColorOptions, label)
}

func (s *Session) toggle(ev event, options []models.Option, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := catalog.FindOption(options, label); !ok {
		s.ignoreLocked(string(ev), zap.String("label", label))
		return
	}
	if !s.advanceLocked(ev) {
		return
	}

	for i, p := range s.pending {
		if p == label {
			s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
			return
		}
	}
	s.pending = append(s.pending, label)
}

func (s *Session) ConfirmPatterns() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.confirmLocked(evConfirmPatterns) {
		return
	}
	s.replyLocked(echo(catalog.PatternOptions, s.pending))
	s.prefs.Patterns = s.takePendingLocked()
	s.scheduleLocked(ackDelay, func() {
		s.sayLocked(models.KindText, patternAckText, nil)
	})
	s.scheduleLocked(promptDelay, func() {
		s.sayLocked(models.KindColorSwatches, colorPromptText, catalog.ColorOptions)
	})
}

func (s *Session) ConfirmColors() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.confirmLocked(evConfirmColors) {
		return
	}
	s.replyLocked(echo(catalog.ColorOptions, s.pending))
	s.prefs.Colors = s.takePendingLocked()
	s.scheduleLocked(ackDelay, func() {
		s.sayLocked(models.KindText, colorAckText, nil)
	})
	s.scheduleLocked(promptDelay, func() {
		s.sayLocked(models.KindMoodGrid, moodPromptText, catalog.MoodOptions)
	})
}

// confirmLocked applies a confirm event, which needs at least one pending selection.
func (s *Session) confirmLocked(ev event) bool {
	if len(s.pending) == 0 {
		s.ignoreLocked(string(ev), zap.String("reason", "nothing selected"))
		return false
	}
	return s.advanceLocked(ev)
}

func (s *Session) takePendingLocked() []string {
	out := s.pending
	s.pending = nil
	return out
}

// SelectMood completes the questionnaire and asks the engine for results. The rationale call
// runs in the background; its answer is dropped if the conversation restarted meanwhile.
func (s *Session) SelectMood(mood string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := catalog.FindOption(catalog.MoodOptions, mood); !ok {
		s.ignoreLocked("select mood", zap.String("mood", mood))
		return
	}
	if !s.advanceLocked(evSelectMood) {
		return
	}

	s.replyLocked(mood)
	s.prefs.Mood = mood
	s.scheduleLocked(loadingDelay, func() {
		if s.step == models.StepGenerating {
			s.sayLocked(models.KindLoading, loadingText, nil)
		}
	})

	prefs := s.snapshotPrefsLocked()
	picks := s.engine.Recommend(prefs)

	ctx, cancel := context.WithCancel(s.ctx)
	s.inflight = cancel
	gen := s.gen

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		text := s.engine.Rationale(ctx, prefs, picks)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen || s.ended {
			s.logger.Debug("Discarding stale recommendation", zap.Uint64("generation", gen))
			return
		}
		s.inflight = nil
		s.scheduleLocked(revealDelay, func() {
			s.revealLocked(prefs, picks, text)
		})
	}()
}

func (s *Session) revealLocked(prefs models.Preferences, picks []models.Wallpaper, rationale string) {
	if !s.advanceLocked(evResultsReady) {
		return
	}

	kept := s.messages[:0:0]
	for _, m := range s.messages {
		if m.Kind != models.KindLoading {
			kept = append(kept, m)
		}
	}
	s.messages = kept

	intro := rationale
	if intro == "" {
		intro = recommend.FallbackIntro(prefs, len(picks))
	}
	s.sayLocked(models.KindText, intro, nil)
	s.suggestLocked(picks)
	s.sayLocked(models.KindQuickActions, resultsActionsText,
		actionOptions(ActionShowDifferent, ActionExploreAll, ActionStartOver))
	s.logger.Info("Presented recommendations", zap.Int("count", len(picks)), zap.Bool("generated", rationale != ""))
}

// HandleQuickAction runs one of the follow-up buttons. Labels from clients must go through
// ParseQuickAction first; any other value here is a programming error.
func (s *Session) HandleQuickAction(action QuickAction) {
	switch action {
	case ActionStartOver, ActionDesignAnother:
		s.Start()
		return
	case ActionShowDifferent, ActionExploreAll, ActionViewCart, ActionBrowse:
	default:
		panic(fmt.Sprintf("chat: unhandled quick action %q", string(action)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.advanceLocked(evQuickAction) {
		return
	}
	s.replyLocked(string(action))

	switch action {
	case ActionShowDifferent:
		s.sayLocked(models.KindText, shuffleText, nil)
		s.scheduleLocked(shuffleDelay, func() {
			s.suggestLocked(s.engine.Shuffle(shuffleSize))
		})
	case ActionExploreAll:
		s.sayLocked(models.KindText, exploreText, nil)
		s.scheduleLocked(navigateDelay, func() {
			s.navigator.NavigateToListing(catalog.FilterAll, catalog.FilterAll)
			s.closed = true
		})
	case ActionViewCart:
		s.sayLocked(models.KindText, viewCartText, nil)
		s.scheduleLocked(navigateDelay, func() {
			s.navigator.NavigateToCart()
			s.closed = true
		})
	case ActionBrowse:
		s.scheduleLocked(browseDelay, func() {
			s.navigator.NavigateToListing(catalog.FilterAll, catalog.FilterAll)
			s.closed = true
		})
	}
}

// AddToCart puts a wallpaper from a delivered suggestion list in the shopper's cart. The cart
// collaborator sees each wallpaper at most once between restarts; every call still gets a
// confirmation.
func (s *Session) AddToCart(wallpaperID string) {
	w, err := s.catalog.ByID(wallpaperID)
	if err != nil {
		s.logger.Debug("Ignoring cart add", zap.String("wallpaperId", wallpaperID), zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.acceptLocked(evAddToCart)
	if !ok {
		return
	}
	if !s.suggested[w.ID] {
		s.ignoreLocked(string(evAddToCart), zap.String("wallpaperId", w.ID), zap.String("reason", "not suggested"))
		return
	}
	s.moveLocked(evAddToCart, next)

	if !s.added[w.ID] {
		s.added[w.ID] = true
		s.addedOrder = append(s.addedOrder, w.ID)

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.cart.AddToCart(s.ctx, s.shopperID, w); err != nil {
				s.logger.Error("Failed to add wallpaper to cart", zap.String("wallpaperId", w.ID), zap.Error(err))
			}
		}()
	}

	s.scheduleLocked(cartConfirmDelay, func() {
		s.sayLocked(models.KindText, cartConfirmText(w.Name), nil)
		s.sayLocked(models.KindQuickActions, "", actionOptions(ActionDesignAnother, ActionViewCart, ActionBrowse))
	})
}

// ToggleWishlist flips a catalog wallpaper's wishlist membership and reports the new state.
func (s *Session) ToggleWishlist(ctx context.Context, wallpaperID string) (bool, error) {
	if _, err := s.catalog.ByID(wallpaperID); err != nil {
		return false, err
	}

	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return false, ErrSessionNotFound
	}
	s.touchLocked()
	s.mu.Unlock()

	on, err := s.wishlist.Toggle(ctx, s.shopperID, wallpaperID)
	if err != nil {
		return false, fmt.Errorf("toggle wishlist: %w", err)
	}
	return on, nil
}

// Reopen shows the assistant again after a navigation closed it. The transcript is kept.
func (s *Session) Reopen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.closed = false
	s.touchLocked()
}

// View is a snapshot for rendering.
func (s *Session) View(ctx context.Context) models.SessionView {
	s.mu.Lock()
	v := models.SessionView{
		ID:           s.id,
		ShopperID:    s.shopperID,
		Step:         s.step,
		Preferences:  s.snapshotPrefsLocked(),
		Messages:     append([]models.Message(nil), s.messages...),
		Pending:      append([]string{}, s.pending...),
		AddedToCart:  append([]string{}, s.addedOrder...),
		Closed:       s.closed || s.ended,
		LastActivity: s.lastActivity,
	}
	s.mu.Unlock()

	if q, ok := s.navigator.(*DirectiveQueue); ok {
		v.Directives = q.Peek()
	}

	ids, err := s.wishlist.IDs(ctx, s.shopperID)
	if err != nil {
		s.logger.Warn("Failed to read wishlist", zap.Error(err))
	}
	v.WishlistIDs = append([]string{}, ids...)
	return v
}

// DrainDirectives hands pending navigations to the caller once.
func (s *Session) DrainDirectives() []models.Directive {
	if q, ok := s.navigator.(*DirectiveQueue); ok {
		return q.Drain()
	}
	return nil
}

func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Close ends the session for good: pending messages are dropped and in-flight calls cancelled.
func (s *Session) Close() {
	s.mu.Lock()
	if !s.ended {
		s.ended = true
		s.gen++
		s.stopTimersLocked()
		s.cancel()
	}
	s.mu.Unlock()
}

// Wait blocks until background rationale and cart calls have returned.
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) resetLocked() {
	s.gen++
	s.stopTimersLocked()
	s.step, _ = transition(s.step, evRestart)
	s.prefs = models.Preferences{}
	s.pending = nil
	s.messages = nil
	s.suggested = make(map[string]bool)
	s.added = make(map[string]bool)
	s.addedOrder = nil
	s.closed = false
	s.touchLocked()
}

func (s *Session) stopTimersLocked() {
	for id, p := range s.timers {
		p.timer.Stop()
		delete(s.timers, id)
	}
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
}

// advanceLocked moves the state machine by ev. Illegal events are logged and ignored.
func (s *Session) advanceLocked(ev event) bool {
	next, ok := s.acceptLocked(ev)
	if !ok {
		return false
	}
	s.moveLocked(ev, next)
	return true
}

// acceptLocked reports whether ev is legal now and the step it leads to. A shopper answer
// first delivers every message still waiting on its delay, so the answer never lands in the
// transcript ahead of the prompt it answers.
func (s *Session) acceptLocked(ev event) (models.Step, bool) {
	if s.ended {
		return "", false
	}
	if _, ok := transition(s.step, ev); !ok {
		s.ignoreLocked(string(ev))
		return "", false
	}
	if ev != evResultsReady {
		s.deliverPendingLocked()
	}
	return transition(s.step, ev)
}

func (s *Session) moveLocked(ev event, next models.Step) {
	s.step = next
	if ev != evResultsReady {
		s.touchLocked()
	}
}

// scheduleLocked delivers f after the paced delay d unless the conversation restarts first.
func (s *Session) scheduleLocked(d time.Duration, f func()) {
	gen := s.gen
	s.timerSeq++
	id := s.timerSeq
	d = s.pacing(d)
	p := &scheduled{due: s.clock.Now().Add(d), f: f}
	s.timers[id] = p
	p.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.timers[id]; !ok {
			return // stopped, or delivered early
		}
		delete(s.timers, id)
		if gen != s.gen || s.ended {
			return
		}
		f()
	})
}

// deliverPendingLocked runs the waiting messages now, in the order they were due.
func (s *Session) deliverPendingLocked() {
	if len(s.timers) == 0 {
		return
	}
	ids := make([]uint64, 0, len(s.timers))
	for id := range s.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.timers[ids[i]], s.timers[ids[j]]
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return ids[i] < ids[j]
	})
	for _, id := range ids {
		p, ok := s.timers[id]
		if !ok {
			continue
		}
		delete(s.timers, id)
		p.timer.Stop()
		p.f()
	}
}

// suggestLocked shows picks and makes them eligible for the cart until the next restart.
func (s *Session) suggestLocked(picks []models.Wallpaper) {
	for _, w := range picks {
		s.suggested[w.ID] = true
	}
	s.appendLocked(models.Message{Role: models.RoleAssistant, Kind: models.KindSuggestions, Suggestions: picks})
}

func (s *Session) sayLocked(kind models.MessageKind, text string, options []models.Option) {
	s.appendLocked(models.Message{Role: models.RoleAssistant, Kind: kind, Text: text, Options: options})
}

func (s *Session) replyLocked(text string) {
	s.appendLocked(models.Message{Role: models.RoleUser, Kind: models.KindUserReply, Text: text})
}

func (s *Session) appendLocked(m models.Message) {
	m.ID = s.newID()
	m.CreatedAt = s.clock.Now()
	s.messages = append(s.messages, m)
}

func (s *Session) snapshotPrefsLocked() models.Preferences {
	p := s.prefs
	p.Patterns = append([]string(nil), s.prefs.Patterns...)
	p.Colors = append([]string(nil), s.prefs.Colors...)
	return p
}

func (s *Session) touchLocked() {
	s.lastActivity = s.clock.Now()
}

func (s *Session) ignoreLocked(action string, fields ...zap.Field) {
	s.logger.Debug("Ignoring action", append([]zap.Field{zap.String("action", action), zap.String("step", string(s.step))}, fields...)...)
}
