package availability

// Exception is a closure rule layered over recurring definitions.
// Semantics are purely additive: an occurrence is unavailable as soon as
// any single rule closes it, and no rule can re-open one.
type Exception interface {
	// Closes reports whether this rule suppresses the given occurrence
	// of the given definition on the target date.
	Closes(def SlotDefinition, occ Occurrence, date Date) bool
}

// PeriodException closes every slot of every service whose target date
// falls within [Start, End], inclusive on both ends.
type PeriodException struct {
	Start Date
	End   Date
}

func (e PeriodException) Closes(_ SlotDefinition, _ Occurrence, date Date) bool {
	return !date.Before(e.Start) && !date.After(e.End)
}

// SingleDayException closes every slot of every service on one date.
type SingleDayException struct {
	Date Date
}

func (e SingleDayException) Closes(_ SlotDefinition, _ Occurrence, date Date) bool {
	return date.Equal(e.Date)
}

// ServiceException closes all occurrences of one definition on one date.
type ServiceException struct {
	SlotID uint
	Date   Date
}

func (e ServiceException) Closes(def SlotDefinition, _ Occurrence, date Date) bool {
	return date.Equal(e.Date) && e.SlotID == def.ID
}

// TimeSlotsException closes specific quarter-hour positions of one
// definition. It carries no date: the closure applies on every date the
// definition generates occurrences for.
type TimeSlotsException struct {
	SlotID      uint
	ClosedSlots []int
}

func (e TimeSlotsException) Closes(def SlotDefinition, occ Occurrence, _ Date) bool {
	if e.SlotID != def.ID {
		return false
	}
	for _, idx := range e.ClosedSlots {
		if idx == occ.GridIndex {
			return true
		}
	}
	return false
}

// IsClosed reports whether any rule closes the occurrence. Evaluation
// short-circuits on the first match; rule order cannot change the result.
func IsClosed(def SlotDefinition, occ Occurrence, excs []Exception, date Date) bool {
	for _, e := range excs {
		if e.Closes(def, occ, date) {
			return true
		}
	}
	return false
}
