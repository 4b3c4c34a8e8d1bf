package tracking

import "time"

// TimedCheck measures a check's duration and delegates to Tracker. A nil
// tracker makes every method a no-op, so callers never guard.
type TimedCheck struct {
	tracker   *Tracker
	startTime time.Time
}

// Start creates a new TimedCheck.
func Start(tracker *Tracker) *TimedCheck {
	return &TimedCheck{
		tracker:   tracker,
		startTime: time.Now(),
	}
}

// Track records a check run with elapsed duration.
func (tc *TimedCheck) Track(project, filters string, shownLines, totalLines, status int) error {
	if tc.tracker == nil {
		return nil
	}
	ms := time.Since(tc.startTime).Milliseconds()
	return tc.tracker.Track(project, filters, shownLines, totalLines, status, ms)
}
