package models

import "time"

// CompetitionWindow is the timed event set by an admin
type CompetitionWindow struct {
	// EndTimestamp is the instant after which the competition is over
	EndTimestamp time.Time
}

// Ended reports whether now is past the end of the window
func (w *CompetitionWindow) Ended(now time.Time) bool {
	return w != nil && now.After(w.EndTimestamp)
}

// TimeRemaining is the countdown shown to players
type TimeRemaining struct {
	Days    int
	Hours   int
	Minutes int
	Total   time.Duration
}

// Remaining splits the time left in the window; it is zero once ended
func (w *CompetitionWindow) Remaining(now time.Time) TimeRemaining {
	left := w.EndTimestamp.Sub(now)
	if left <= 0 {
		return TimeRemaining{}
	}

	day := 24 * time.Hour
	return TimeRemaining{
		Days:    int(left / day),
		Hours:   int((left % day) / time.Hour),
		Minutes: int((left % time.Hour) / time.Minute),
		Total:   left,
	}
}
