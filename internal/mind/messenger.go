package mind

import (
	"context"
	"time"

	"github.com/airai75/harubot/internal/persona"
)

// ChatMessage is a read-only view of one channel message, as much of it as
// the engagement pipeline needs.
type ChatMessage struct {
	ID           string
	AuthorID     string
	AuthorName   string
	Content      string
	CreatedAt    time.Time
	MentionsSelf bool
}

// Presence mirrors the two states the agent ever shows.
type Presence int

const (
	PresenceInvisible Presence = iota
	PresenceActive
)

// HistoryQuery selects a window of channel history. Zero fields are
// unbounded. Results are always oldest first.
type HistoryQuery struct {
	After    time.Time // only messages created after this instant
	Before   time.Time // only messages created at or before this instant
	BeforeID string    // only messages older than this message (context fetch)
	Limit    int
}

// Messenger is the messaging-platform surface the pipeline talks to. One
// Messenger is bound to one channel.
type Messenger interface {
	History(ctx context.Context, q HistoryQuery) ([]ChatMessage, error)
	Send(ctx context.Context, text string) error
	Typing(ctx context.Context) error
	SetPresence(ctx context.Context, p Presence) error
	SelfID() string
}

// Decider classifies and composes persona text. Implemented by
// persona.Decider; faked in tests.
type Decider interface {
	Decide(ctx context.Context, kind persona.Kind, transcript string) (persona.Outcome, error)
	Compose(ctx context.Context, kind persona.Kind) (string, error)
}

// MarkerStore persists one-shot flags (first boot) across restarts.
type MarkerStore interface {
	Exists(name string) bool
	Create(name, contents string) error
}
