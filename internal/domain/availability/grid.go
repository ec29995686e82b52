package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The day is divided into a fixed grid of quarter-hour slots. Exception
// rules reference sub-day intervals by their position on that grid.
const (
	SlotMinutes = 15
	SlotsPerDay = 24 * 60 / SlotMinutes
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

// TimeToSlotIndex maps a wall-clock time ("HH:MM" or "HH:MM:SS") to its
// quarter-hour grid index. Seconds and minutes within the quarter are
// floored away.
func TimeToSlotIndex(t string) (int, error) {
	h, m, err := parseClock(t)
	if err != nil {
		return 0, err
	}
	return h*4 + m/SlotMinutes, nil
}

// SlotIndexToTime is the inverse mapping, producing a zero-padded "HH:MM".
func SlotIndexToTime(index int) string {
	return fmt.Sprintf("%02d:%02d", index/4, (index%4)*SlotMinutes)
}

// parseClock splits "HH:MM" or "HH:MM:SS" into hour and minute. Trailing
// seconds are accepted and ignored.
func parseClock(t string) (hour, minute int, err error) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	return hour, minute, nil
}
