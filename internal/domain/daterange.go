package domain

import (
	"math"
	"time"
)

// DateRange represents a half-open rental interval [Start, End).
// The end instant is excluded, so back-to-back rentals do not overlap.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a date range from two instants
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: start, End: end}
}

// Overlaps returns true if the two half-open ranges intersect
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// DurationDays returns the rental duration in billable days: every
// calendar day the half-open range touches counts in full, so an
// evening pickup returned two mornings later spans three days.
func (r DateRange) DurationDays() int {
	startDay := dayStart(r.Start)
	endDay := dayStart(r.End)

	days := int(math.Round(endDay.Sub(startDay).Hours() / 24))
	if r.End.After(endDay) {
		days++
	}
	return days
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsValid returns true if the range is well-formed (end strictly after start)
func (r DateRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.End.After(r.Start)
}
