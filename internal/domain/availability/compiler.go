package availability

import "strings"

// Compute builds the bookable slots for one establishment and one date:
// definitions are filtered by weekday, expanded into occurrences, matched
// against exception rules, and grouped by service name.
//
// Group order follows the first definition encountered for each service,
// and occurrences within a group keep their per-definition generation
// order; nothing is re-sorted. An empty result means the establishment is
// closed that day, not an error.
//
// The function is pure: no clock, no I/O, safe for concurrent callers.
func Compute(defs []SlotDefinition, excs []Exception, date Date) ([]ServiceGroup, error) {
	weekday := date.Weekday()

	groups := []ServiceGroup{}
	index := make(map[string]int)

	for _, def := range defs {
		if !def.Active || def.Weekday != weekday {
			continue
		}

		occs, err := Expand(def)
		if err != nil {
			return nil, err
		}

		for i := range occs {
			if IsClosed(def, occs[i], excs, date) {
				occs[i].Available = false
			}
		}

		name := strings.TrimSpace(def.ServiceName)
		if name == "" {
			name = DefaultServiceName
		}

		if pos, ok := index[name]; ok {
			groups[pos].Slots = append(groups[pos].Slots, occs...)
			continue
		}

		index[name] = len(groups)
		groups = append(groups, ServiceGroup{
			ServiceName: name,
			Slots:       occs,
		})
	}

	return groups, nil
}

// ComputeForDate is Compute with date parsing in front, failing fast on a
// malformed "YYYY-MM-DD" before any generation starts.
func ComputeForDate(defs []SlotDefinition, excs []Exception, dateStr string) ([]ServiceGroup, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return Compute(defs, excs, date)
}
