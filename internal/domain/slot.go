package domain

import "time"

// Slot candidate time interval [Start, End). Never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share at least one instant.
// Touching intervals (s.End == o.Start) do not overlap.
func (s Slot) Overlaps(o Slot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// Duration returns End - Start
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsValid returns true if End is strictly after Start
func (s Slot) IsValid() bool {
	return s.End.After(s.Start)
}

// Equal compares instants, ignoring location
func (s Slot) Equal(o Slot) bool {
	return s.Start.Equal(o.Start) && s.End.Equal(o.End)
}
