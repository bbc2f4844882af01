package mind

import (
	"context"
	"time"

	"github.com/airai75/harubot/internal/persona"
)

// fakeMessenger is an in-memory channel. Messages are held oldest first.
type fakeMessenger struct {
	selfID     string
	msgs       []ChatMessage
	sent       []string
	typings    int
	presences  []Presence
	historyErr error
	sendErr    error
}

func (f *fakeMessenger) History(_ context.Context, q HistoryQuery) ([]ChatMessage, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}

	if q.BeforeID != "" {
		idx := -1
		for i, m := range f.msgs {
			if m.ID == q.BeforeID {
				idx = i
				break
			}
		}
		if idx <= 0 {
			return nil, nil
		}
		start := idx - q.Limit
		if start < 0 {
			start = 0
		}
		return append([]ChatMessage(nil), f.msgs[start:idx]...), nil
	}

	var out []ChatMessage
	for _, m := range f.msgs {
		if !q.After.IsZero() && !m.CreatedAt.After(q.After) {
			continue
		}
		if !q.Before.IsZero() && m.CreatedAt.After(q.Before) {
			continue
		}
		out = append(out, m)
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[len(out)-q.Limit:]
	}
	return out, nil
}

func (f *fakeMessenger) Send(_ context.Context, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeMessenger) Typing(context.Context) error {
	f.typings++
	return nil
}

func (f *fakeMessenger) SetPresence(_ context.Context, p Presence) error {
	f.presences = append(f.presences, p)
	return nil
}

func (f *fakeMessenger) SelfID() string { return f.selfID }

func (f *fakeMessenger) lastPresence() Presence {
	if len(f.presences) == 0 {
		return PresenceInvisible
	}
	return f.presences[len(f.presences)-1]
}

// fakeDecider records calls and answers from canned functions.
type fakeDecider struct {
	decideFn  func(kind persona.Kind, transcript string) (persona.Outcome, error)
	composeFn func(kind persona.Kind) (string, error)

	decided     []persona.Kind
	composed    []persona.Kind
	transcripts []string
}

func (d *fakeDecider) Decide(_ context.Context, kind persona.Kind, transcript string) (persona.Outcome, error) {
	d.decided = append(d.decided, kind)
	d.transcripts = append(d.transcripts, transcript)
	if d.decideFn != nil {
		return d.decideFn(kind, transcript)
	}
	return persona.Outcome{Ignore: true}, nil
}

func (d *fakeDecider) Compose(_ context.Context, kind persona.Kind) (string, error) {
	d.composed = append(d.composed, kind)
	if d.composeFn != nil {
		return d.composeFn(kind)
	}
	return "composed", nil
}

// fakeMarkers is an in-memory MarkerStore.
type fakeMarkers struct {
	created map[string]string
}

func newFakeMarkers() *fakeMarkers {
	return &fakeMarkers{created: make(map[string]string)}
}

func (m *fakeMarkers) Exists(name string) bool {
	_, ok := m.created[name]
	return ok
}

func (m *fakeMarkers) Create(name, contents string) error {
	m.created[name] = contents
	return nil
}

// newTestRunner builds a runner with instant delays and a session seeded at
// the given local instant.
func newTestRunner(msgr Messenger, d Decider, now time.Time) *Runner {
	r := NewRunner(msgr, d, time.UTC)
	r.session = NewSession(now)
	r.sleep = func(ctx context.Context, _ time.Duration) bool { return ctx.Err() == nil }
	r.randInt = func(min, _ int) int { return min }
	return r
}

// 2026-03-04 is a Wednesday, 2026-03-07 a Saturday.
func weekdayAt(hour, min int) time.Time {
	return time.Date(2026, time.March, 4, hour, min, 0, 0, time.UTC)
}

func weekendAt(hour, min int) time.Time {
	return time.Date(2026, time.March, 7, hour, min, 0, 0, time.UTC)
}
