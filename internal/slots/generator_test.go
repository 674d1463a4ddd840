package slots

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

func testPolicy() domain.CalendarPolicy {
	p := domain.DefaultCalendarPolicy()
	p.Location = time.UTC
	return p
}

var (
	wednesday = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	newYear   = time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestGenerateExclusiveWeekday(t *testing.T) {
	day := testPolicy().OpenHours(wednesday)

	got := slices.Collect(Generate(domain.ExclusiveSession{}, time.Hour, day))

	require.Len(t, got, 15)
	for i, s := range got {
		assert.Equal(t, 7+i, s.Start.Hour())
		assert.Equal(t, time.Hour, s.Duration())
	}
	assert.Equal(t, 21, got[len(got)-1].Start.Hour())
}

func TestGenerateWeekendIsNarrower(t *testing.T) {
	day := testPolicy().OpenHours(saturday)

	got := slices.Collect(Generate(domain.CapacityLimited{Capacity: 10}, time.Hour, day))

	require.Len(t, got, 12)
	assert.Equal(t, 8, got[0].Start.Hour())
	assert.Equal(t, 19, got[len(got)-1].Start.Hour())
}

func TestGenerateDropsSlotsEndingAfterClose(t *testing.T) {
	day := testPolicy().OpenHours(wednesday)

	got := slices.Collect(Generate(domain.ExclusiveSession{}, 90*time.Minute, day))

	// 07:00 .. 20:00, 21:00+90m ends after 22:00
	require.Len(t, got, 14)
	last := got[len(got)-1]
	assert.Equal(t, 20, last.Start.Hour())
	assert.Equal(t, time.Date(2026, 10, 14, 21, 30, 0, 0, time.UTC), last.End)
	for _, s := range got {
		assert.False(t, s.End.After(day.Close))
	}
}

func TestGenerateUnrestrictedFullDay(t *testing.T) {
	for _, date := range []time.Time{wednesday, saturday} {
		day := testPolicy().OpenHours(date)

		got := slices.Collect(Generate(domain.UnrestrictedAccess{}, 0, day))

		require.Len(t, got, 1)
		assert.Equal(t, date, got[0].Start)
		assert.Equal(t, date.Add(23*time.Hour+59*time.Minute+59*time.Second), got[0].End)
	}
}

func TestGenerateClosedDayIsEmpty(t *testing.T) {
	day := testPolicy().OpenHours(newYear)
	require.False(t, day.IsOpen)

	rules := []domain.Occupancy{
		domain.UnrestrictedAccess{},
		domain.CapacityLimited{Capacity: 5},
		domain.ExclusiveSession{},
	}
	for _, rule := range rules {
		assert.Empty(t, slices.Collect(Generate(rule, time.Hour, day)))
	}
}

func TestGenerateIsRestartable(t *testing.T) {
	seq := Generate(domain.ExclusiveSession{}, time.Hour, testPolicy().OpenHours(wednesday))

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, first, second)
}

func TestGenerateStopsEarly(t *testing.T) {
	seq := Generate(domain.ExclusiveSession{}, time.Hour, testPolicy().OpenHours(wednesday))

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestContains(t *testing.T) {
	seq := Generate(domain.ExclusiveSession{}, time.Hour, testPolicy().OpenHours(wednesday))

	aligned := domain.Slot{Start: wednesday.Add(9 * time.Hour), End: wednesday.Add(10 * time.Hour)}
	offGrid := domain.Slot{Start: wednesday.Add(9*time.Hour + 30*time.Minute), End: wednesday.Add(10*time.Hour + 30*time.Minute)}
	wrongLength := domain.Slot{Start: wednesday.Add(9 * time.Hour), End: wednesday.Add(11 * time.Hour)}

	assert.True(t, Contains(seq, aligned))
	assert.False(t, Contains(seq, offGrid))
	assert.False(t, Contains(seq, wrongLength))
}
