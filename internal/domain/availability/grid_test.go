package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToSlotIndex(t *testing.T) {
	tests := []struct {
		time     string
		expected int
	}{
		{"00:00", 0},
		{"00:14", 0},
		{"00:15", 1},
		{"09:00", 36},
		{"09:07", 36},
		{"12:30", 50},
		{"12:30:45", 50}, // seconds are ignored
		{"23:45", 95},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			idx, err := TimeToSlotIndex(tt.time)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestTimeToSlotIndexRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "9", "nine:00", "09:xx", "25:00", "09:75", "09:00:00:00"} {
		t.Run(bad, func(t *testing.T) {
			_, err := TimeToSlotIndex(bad)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestSlotIndexToTime(t *testing.T) {
	assert.Equal(t, "00:00", SlotIndexToTime(0))
	assert.Equal(t, "09:00", SlotIndexToTime(36))
	assert.Equal(t, "09:15", SlotIndexToTime(37))
	assert.Equal(t, "23:45", SlotIndexToTime(95))
}

func TestGridRoundTrip(t *testing.T) {
	for i := 0; i < SlotsPerDay; i++ {
		idx, err := TimeToSlotIndex(SlotIndexToTime(i))
		require.NoError(t, err)
		require.Equal(t, i, idx)
	}
}
