package mind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceHours(t *testing.T) {
	assert.Equal(t, []int{21, 22, 23}, SurfaceHours(weekdayAt(12, 0)))
	assert.Equal(t, []int{18, 19, 20, 21, 22, 23}, SurfaceHours(weekendAt(12, 0)))
}

func TestGateOutsideWindowRecordsCheck(t *testing.T) {
	s := NewSession(weekdayAt(8, 0))
	now := weekdayAt(15, 30)

	assert.False(t, s.Gate(now))
	assert.Equal(t, now, s.LastSurfaceCheck, "idle ticks still record the check time")
}

func TestGateWeekdayEveningOnly(t *testing.T) {
	s := NewSession(weekdayAt(8, 0))
	assert.False(t, s.Gate(weekdayAt(18, 5)), "18:00 is weekend-only")

	s = NewSession(weekdayAt(8, 0))
	assert.True(t, s.Gate(weekdayAt(21, 5)))
}

func TestGateWeekendEarlyEvening(t *testing.T) {
	s := NewSession(weekendAt(8, 0))
	assert.True(t, s.Gate(weekendAt(18, 5)))
}

func TestGateDebounceAfterTenMinutes(t *testing.T) {
	s := NewSession(weekdayAt(8, 0))
	s.LastSurfaceCheck = weekdayAt(20, 59)

	assert.False(t, s.Gate(weekdayAt(21, 10)))
	assert.Equal(t, weekdayAt(20, 59), s.LastSurfaceCheck, "debounced ticks do not record the check time")

	assert.False(t, s.Gate(weekdayAt(21, 59)))
}

func TestGateHourHandledOnce(t *testing.T) {
	s := NewSession(weekdayAt(8, 0))

	first := weekdayAt(21, 3)
	assert.True(t, s.Gate(first))
	s.LastSurfaceCheck = first // what the runner records after surfacing

	assert.False(t, s.Gate(weekdayAt(21, 4)), "same hour already produced a decision")
	assert.True(t, s.Gate(weekdayAt(22, 2)), "next hour opens again")
}

func TestGateRunsRolloverFirst(t *testing.T) {
	s := NewSession(weekdayAt(8, 0))
	s.FirstSurfaceOfDay = false
	s.DailyCasualPosted = true
	s.LastSurfaceCheck = weekdayAt(23, 5)

	nextMorning := weekdayAt(23, 5).Add(11 * time.Hour) // 10:05 next day
	assert.False(t, s.Gate(nextMorning), "morning is outside the window")
	assert.True(t, s.FirstSurfaceOfDay)
	assert.False(t, s.DailyCasualPosted)
	assert.Equal(t, nextMorning, s.LastSurfaceCheck)
}

func TestGateNewDaySameHourNotBlocked(t *testing.T) {
	// 23:05 yesterday must not suppress 23:0x today: rollover clears the
	// check before the handled-hour comparison.
	s := NewSession(weekdayAt(8, 0))
	s.LastSurfaceCheck = weekdayAt(23, 5)

	assert.True(t, s.Gate(weekdayAt(23, 5).AddDate(0, 0, 1).Add(-2*time.Minute)))
}
