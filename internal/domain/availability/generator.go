package availability

import (
	"errors"
	"fmt"
)

var ErrMalformedDefinition = errors.New("malformed slot definition")

// Expand generates the occurrences of one definition at quarter-hour
// steps over the half-open window [StartTime, EndTime). A window shorter
// than one step yields no occurrences; an inverted window is a data
// problem and is rejected rather than silently read as "closed".
//
// Every occurrence starts available. Availability is only ever lowered
// afterwards, by exception matching.
func Expand(def SlotDefinition) ([]Occurrence, error) {
	startH, startM, err := parseClock(def.StartTime)
	if err != nil {
		return nil, err
	}

	endH, endM, err := parseClock(def.EndTime)
	if err != nil {
		return nil, err
	}

	start := startH*60 + startM
	end := endH*60 + endM

	if start >= end {
		return nil, fmt.Errorf("%w: slot %d has start %q >= end %q",
			ErrMalformedDefinition, def.ID, def.StartTime, def.EndTime)
	}

	capacity := def.MaxCapacity
	if capacity <= 0 {
		capacity = DefaultMaxCapacity
	}

	var occs []Occurrence
	for cur := start; cur+SlotMinutes <= end; cur += SlotMinutes {
		occs = append(occs, Occurrence{
			Time:        fmt.Sprintf("%02d:%02d", cur/60, cur%60),
			Available:   true,
			MaxCapacity: capacity,
			SlotID:      def.ID,
			GridIndex:   cur / SlotMinutes,
		})
	}

	return occs, nil
}
