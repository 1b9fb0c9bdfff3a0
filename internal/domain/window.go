package domain

import "time"

// TimeWindow selects showtimes by start time. End is optional.
type TimeWindow struct {
	Start time.Time
	End   *time.Time
}

// NewTimeWindow builds a window from optional bounds, defaulting the start to now.
func NewTimeWindow(start, end *time.Time, now time.Time) (TimeWindow, error) {
	w := TimeWindow{Start: now, End: end}
	if start != nil {
		w.Start = *start
	}

	if w.End != nil && w.End.Before(w.Start) {
		return TimeWindow{}, ErrInvalidTimeRange
	}

	return w, nil
}

func (w TimeWindow) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}

	return w.End == nil || !t.After(*w.End)
}
