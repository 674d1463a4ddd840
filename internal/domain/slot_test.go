package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func slotAt(startHour, startMin, endHour, endMin int) Slot {
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	return Slot{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestSlotOverlaps(t *testing.T) {
	base := slotAt(11, 30, 12, 0)

	tests := []struct {
		name  string
		other Slot
		want  bool
	}{
		{name: "partial overlap from left", other: slotAt(11, 20, 11, 40), want: true},
		{name: "partial overlap from right", other: slotAt(11, 50, 12, 30), want: true},
		{name: "contains", other: slotAt(11, 0, 13, 0), want: true},
		{name: "contained", other: slotAt(11, 40, 11, 50), want: true},
		{name: "identical", other: base, want: true},
		{name: "touches start", other: slotAt(11, 0, 11, 30), want: false},
		{name: "touches end", other: slotAt(12, 0, 12, 30), want: false},
		{name: "disjoint before", other: slotAt(9, 0, 10, 0), want: false},
		{name: "disjoint after", other: slotAt(14, 0, 15, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, base.Overlaps(tt.other), tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestSlotIsValid(t *testing.T) {
	assert.True(t, slotAt(9, 0, 10, 0).IsValid())
	assert.False(t, slotAt(10, 0, 10, 0).IsValid())
	assert.False(t, slotAt(10, 0, 9, 0).IsValid())
	assert.Equal(t, time.Hour, slotAt(9, 0, 10, 0).Duration())
}
