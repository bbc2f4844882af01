package mind

import "time"

// Surfacing is permitted only in the first minutes of an eligible hour. With
// a 60s tick this turns the poll into a once-per-eligible-hour trigger.
const debounceMinutes = 10

// SurfaceHours returns the local hours during which surfacing is permitted:
// evenings on weekdays, a longer stretch on weekends.
func SurfaceHours(now time.Time) []int {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return []int{18, 19, 20, 21, 22, 23}
	default:
		return []int{21, 22, 23}
	}
}

// Gate decides whether this tick is a valid surfacing moment. It applies the
// day rollover first, then the window, debounce and handled-hour tests, in
// that order. Out-of-window ticks record LastSurfaceCheck; debounced ticks do
// not, leaving the hour open for an earlier-in-the-hour tick.
func (s *Session) Gate(now time.Time) bool {
	s.RolloverIfNewDay(now)

	if !hourIn(SurfaceHours(now), now.Hour()) {
		s.LastSurfaceCheck = now
		return false
	}

	if now.Minute() >= debounceMinutes {
		return false
	}

	// Same eligible hour already produced a surfacing decision.
	if !s.LastSurfaceCheck.IsZero() &&
		s.LastSurfaceCheck.Hour() == now.Hour() &&
		s.LastSurfaceCheck.Minute() < debounceMinutes {
		return false
	}

	return true
}

func hourIn(hours []int, h int) bool {
	for _, v := range hours {
		if v == h {
			return true
		}
	}
	return false
}
