package models

import "time"

// Step is the dialogue state of an assistant session.
type Step string

const (
	StepRoom        Step = "collecting-room"
	StepPattern     Step = "collecting-pattern"
	StepColor       Step = "collecting-color"
	StepMood        Step = "collecting-mood"
	StepGenerating  Step = "generating"
	StepSuggestions Step = "presenting-results"
	StepIdle        Step = "idle"
)

// Role identifies who authored a transcript message.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// MessageKind tells the client how to render a message.
type MessageKind string

const (
	KindText           MessageKind = "text"
	KindUserReply      MessageKind = "user-reply"
	KindRoomOptions    MessageKind = "room-options"
	KindPatternOptions MessageKind = "pattern-options"
	KindColorSwatches  MessageKind = "color-swatches"
	KindMoodGrid       MessageKind = "mood-grid"
	KindSuggestions    MessageKind = "suggestions"
	KindLoading        MessageKind = "loading"
	KindQuickActions   MessageKind = "quick-actions"
)

// Option is one selectable answer. Only Label carries meaning; the rest is display data.
type Option struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
	ColorClass  string `json:"colorClass,omitempty"`
	Hex         string `json:"hex,omitempty"`
	Dark        bool   `json:"dark,omitempty"` // contrast hint for swatches
}

// Message is an immutable transcript entry.
type Message struct {
	ID          string      `json:"id"`
	Role        Role        `json:"role"`
	Kind        MessageKind `json:"type"`
	Text        string      `json:"text,omitempty"`
	Options     []Option    `json:"options,omitempty"`
	Suggestions []Wallpaper `json:"suggestions,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Preferences are the answers collected by the questionnaire.
type Preferences struct {
	Room     string   `json:"room"`
	Patterns []string `json:"patterns"`
	Colors   []string `json:"colors"`
	Mood     string   `json:"mood"`
}

// DirectiveType names a navigation the client should perform.
type DirectiveType string

const (
	DirectiveListing DirectiveType = "navigate-listing"
	DirectiveCart    DirectiveType = "navigate-cart"
)

// Directive asks the storefront to navigate away from the assistant.
type Directive struct {
	Type        DirectiveType `json:"type"`
	FilterType  string        `json:"filterType,omitempty"`
	FilterValue string        `json:"filterValue,omitempty"`
}

// SessionView is the render snapshot of an assistant session.
type SessionView struct {
	ID           string      `json:"id"`
	ShopperID    string      `json:"shopperId"`
	Step         Step        `json:"step"`
	Preferences  Preferences `json:"preferences"`
	Messages     []Message   `json:"messages"`
	Pending      []string    `json:"pendingSelections"`
	AddedToCart  []string    `json:"addedToCart"`
	WishlistIDs  []string    `json:"wishlistIds"`
	Directives   []Directive `json:"directives,omitempty"`
	Closed       bool        `json:"closed"`
	LastActivity time.Time   `json:"lastActivity"`
}
