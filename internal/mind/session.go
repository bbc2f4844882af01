package mind

import "time"

// Session is the single in-memory state record of the agent. It is touched
// only from the tick-processing goroutine, so it carries no lock. A restart
// loses it; that is accepted — MentionWatermark starts at "now" so old
// mentions are never replayed.
type Session struct {
	// LastSurfaceCheck is the last processed tick. Zero means unset (cleared
	// at day rollover so a fresh hour check runs).
	LastSurfaceCheck time.Time

	// MentionWatermark is the boundary below which mentions count as already
	// handled. Moves forward only, except for the explicit fail-forward reset.
	MentionWatermark time.Time

	// FirstSurfaceOfDay and DailyCasualPosted are day-scoped and reset
	// together at local-date rollover.
	FirstSurfaceOfDay bool
	DailyCasualPosted bool
}

// NewSession seeds state at process start: LastSurfaceCheck one day back so
// the first tick runs the rollover path, MentionWatermark at now so history
// before startup is invisible.
func NewSession(now time.Time) *Session {
	return &Session{
		LastSurfaceCheck:  now.AddDate(0, 0, -1),
		MentionWatermark:  now,
		FirstSurfaceOfDay: true,
	}
}

// RolloverIfNewDay resets the day-scoped flags when the local calendar date
// has changed since the last processed tick. Reports whether a reset happened.
func (s *Session) RolloverIfNewDay(now time.Time) bool {
	if s.LastSurfaceCheck.IsZero() || sameDate(s.LastSurfaceCheck, now) {
		return false
	}
	s.FirstSurfaceOfDay = true
	s.DailyCasualPosted = false
	s.LastSurfaceCheck = time.Time{}
	return true
}

// AdvanceMentionWatermark moves the watermark forward. Calls with an older
// timestamp are ignored so the watermark never regresses.
func (s *Session) AdvanceMentionWatermark(t time.Time) {
	if t.After(s.MentionWatermark) {
		s.MentionWatermark = t
	}
}

// FailForward is the error-path reset: anything that happened during the
// failed tick is skipped for good rather than retried against a possibly
// poisoned event.
func (s *Session) FailForward(now time.Time) {
	s.LastSurfaceCheck = now
	s.MentionWatermark = now
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
