package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		def      SlotDefinition
		expected []string
	}{
		{
			name:     "one hour window, end boundary excluded",
			def:      SlotDefinition{ID: 1, StartTime: "09:00", EndTime: "10:00", MaxCapacity: 20, Active: true},
			expected: []string{"09:00", "09:15", "09:30", "09:45"},
		},
		{
			name:     "window shorter than one step yields nothing",
			def:      SlotDefinition{ID: 1, StartTime: "09:00", EndTime: "09:10", Active: true},
			expected: nil,
		},
		{
			// 09:40 fits: its quarter hour ends exactly at the bound
			name:     "unaligned start keeps its offset",
			def:      SlotDefinition{ID: 1, StartTime: "09:10", EndTime: "09:55", Active: true},
			expected: []string{"09:10", "09:25", "09:40"},
		},
		{
			name:     "seconds in bounds are ignored",
			def:      SlotDefinition{ID: 1, StartTime: "12:00:00", EndTime: "12:45:00", Active: true},
			expected: []string{"12:00", "12:15", "12:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occs, err := Expand(tt.def)
			require.NoError(t, err)

			times := make([]string, 0, len(occs))
			for _, o := range occs {
				times = append(times, o.Time)
			}
			if tt.expected == nil {
				assert.Empty(t, times)
			} else {
				assert.Equal(t, tt.expected, times)
			}
		})
	}
}

func TestExpandOccurrencesStartAvailable(t *testing.T) {
	occs, err := Expand(SlotDefinition{ID: 7, StartTime: "12:00", EndTime: "14:00", MaxCapacity: 30, Active: true})
	require.NoError(t, err)
	require.Len(t, occs, 8)

	for _, o := range occs {
		assert.True(t, o.Available)
		assert.Equal(t, 30, o.MaxCapacity)
		assert.Equal(t, uint(7), o.SlotID)
	}
}

func TestExpandAppliesCapacityFallback(t *testing.T) {
	occs, err := Expand(SlotDefinition{ID: 1, StartTime: "09:00", EndTime: "09:30", Active: true})
	require.NoError(t, err)
	require.NotEmpty(t, occs)
	assert.Equal(t, DefaultMaxCapacity, occs[0].MaxCapacity)
}

func TestExpandRejectsInvertedWindow(t *testing.T) {
	_, err := Expand(SlotDefinition{ID: 1, StartTime: "14:00", EndTime: "12:00", Active: true})
	assert.ErrorIs(t, err, ErrMalformedDefinition)

	_, err = Expand(SlotDefinition{ID: 1, StartTime: "12:00", EndTime: "12:00", Active: true})
	assert.ErrorIs(t, err, ErrMalformedDefinition)
}

func TestExpandRejectsMalformedTimes(t *testing.T) {
	_, err := Expand(SlotDefinition{ID: 1, StartTime: "noon", EndTime: "14:00", Active: true})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestExpandIsDeterministic(t *testing.T) {
	def := SlotDefinition{ID: 3, StartTime: "18:30", EndTime: "22:00", MaxCapacity: 45, Active: true}

	first, err := Expand(def)
	require.NoError(t, err)

	second, err := Expand(def)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpandGridIndexMatchesCodec(t *testing.T) {
	occs, err := Expand(SlotDefinition{ID: 1, StartTime: "09:00", EndTime: "11:00", Active: true})
	require.NoError(t, err)

	for _, o := range occs {
		idx, err := TimeToSlotIndex(o.Time)
		require.NoError(t, err)
		assert.Equal(t, idx, o.GridIndex)
	}
}
