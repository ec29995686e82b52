package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExpand(t *testing.T, def SlotDefinition) []Occurrence {
	t.Helper()
	occs, err := Expand(def)
	require.NoError(t, err)
	require.NotEmpty(t, occs)
	return occs
}

func TestPeriodExceptionInclusiveBounds(t *testing.T) {
	def := SlotDefinition{ID: 1, StartTime: "09:00", EndTime: "10:00", Active: true}
	occ := mustExpand(t, def)[0]

	exc := PeriodException{
		Start: NewDate(2024, time.January, 1),
		End:   NewDate(2024, time.January, 7),
	}

	tests := []struct {
		date   Date
		closed bool
	}{
		{NewDate(2023, time.December, 31), false},
		{NewDate(2024, time.January, 1), true},
		{NewDate(2024, time.January, 4), true},
		{NewDate(2024, time.January, 7), true},
		{NewDate(2024, time.January, 8), false},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.closed, exc.Closes(def, occ, tt.date))
		})
	}
}

func TestSingleDayExceptionMatchesOnlyItsDate(t *testing.T) {
	def := SlotDefinition{ID: 1, StartTime: "09:00", EndTime: "10:00", Active: true}
	occ := mustExpand(t, def)[0]

	exc := SingleDayException{Date: NewDate(2024, time.March, 15)}

	assert.True(t, exc.Closes(def, occ, NewDate(2024, time.March, 15)))
	assert.False(t, exc.Closes(def, occ, NewDate(2024, time.March, 16)))
}

func TestServiceExceptionScopedToOneDefinition(t *testing.T) {
	target := SlotDefinition{ID: 4, StartTime: "12:00", EndTime: "14:00", Active: true}
	other := SlotDefinition{ID: 5, StartTime: "12:00", EndTime: "14:00", Active: true}
	date := NewDate(2024, time.May, 10)

	exc := ServiceException{SlotID: 4, Date: date}

	assert.True(t, exc.Closes(target, mustExpand(t, target)[0], date))
	assert.False(t, exc.Closes(other, mustExpand(t, other)[0], date))
	assert.False(t, exc.Closes(target, mustExpand(t, target)[0], NewDate(2024, time.May, 11)))
}

func TestTimeSlotsExceptionClosesOnlyListedQuarters(t *testing.T) {
	def := SlotDefinition{ID: 9, StartTime: "09:00", EndTime: "10:00", Active: true}
	occs := mustExpand(t, def)

	// Index 36 is 09:00 on the day grid.
	exc := TimeSlotsException{SlotID: 9, ClosedSlots: []int{36}}
	date := NewDate(2024, time.June, 3)

	assert.True(t, exc.Closes(def, occs[0], date))
	assert.False(t, exc.Closes(def, occs[1], date))

	other := SlotDefinition{ID: 10, StartTime: "09:00", EndTime: "10:00", Active: true}
	assert.False(t, exc.Closes(other, mustExpand(t, other)[0], date))
}

// The closure carries no date, so it applies on every date the definition
// generates occurrences for. Whether that is intended or a gap in the
// rule model is undecided; current behavior is permanent closure.
func TestTimeSlotsExceptionIgnoresDate(t *testing.T) {
	def := SlotDefinition{ID: 9, StartTime: "09:00", EndTime: "10:00", Active: true}
	occ := mustExpand(t, def)[0]

	exc := TimeSlotsException{SlotID: 9, ClosedSlots: []int{36}}

	assert.True(t, exc.Closes(def, occ, NewDate(2024, time.January, 1)))
	assert.True(t, exc.Closes(def, occ, NewDate(2030, time.December, 25)))
}

func TestIsClosedShortCircuitsAndStaysAdditive(t *testing.T) {
	def := SlotDefinition{ID: 1, StartTime: "09:00", EndTime: "10:00", Active: true}
	occ := mustExpand(t, def)[0]
	date := NewDate(2024, time.March, 15)

	assert.False(t, IsClosed(def, occ, nil, date))

	// Two independently matching rules still yield exactly "closed".
	excs := []Exception{
		SingleDayException{Date: date},
		PeriodException{Start: NewDate(2024, time.March, 1), End: NewDate(2024, time.March, 31)},
	}
	assert.True(t, IsClosed(def, occ, excs, date))

	// Order of evaluation is irrelevant.
	reversed := []Exception{excs[1], excs[0]}
	assert.True(t, IsClosed(def, occ, reversed, date))
}
