package availability

import (
	"errors"
	"fmt"
	"time"
)

// Fallback values applied when a definition omits the field.
const (
	DefaultServiceName = "Service par défaut"
	DefaultMaxCapacity = 50
)

var ErrInvalidDateFormat = errors.New("invalid date format")

// SlotDefinition is a recurring bookable window: one weekday, one time
// range, one service label. Inactive definitions never produce occurrences.
type SlotDefinition struct {
	ID          uint
	Weekday     int // 0 = Sunday .. 6 = Saturday
	ServiceName string
	StartTime   string // "HH:MM" or "HH:MM:SS"
	EndTime     string
	MaxCapacity int
	Active      bool
}

// Occurrence is one concrete quarter-hour bookable unit derived from a
// definition for a target date.
type Occurrence struct {
	Time        string `json:"time"`
	Available   bool   `json:"isAvailable"`
	MaxCapacity int    `json:"maxCapacity"`
	SlotID      uint   `json:"slotId"`

	// GridIndex is the occurrence's quarter-hour position on the day
	// grid, used by time-slot exceptions.
	GridIndex int `json:"-"`
}

// ServiceGroup collects the occurrences of all definitions sharing a
// service label for one date.
type ServiceGroup struct {
	ServiceName string       `json:"serviceName"`
	Slots       []Occurrence `json:"slots"`
}

// Date is a calendar date without a time of day. The engine never reads
// the system clock; callers construct a Date and pass it in.
type Date struct {
	t time.Time
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return Date{t: t}, nil
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Weekday follows the 0=Sunday convention used by slot definitions.
func (d Date) Weekday() int { return int(d.t.Weekday()) }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) String() string { return d.t.Format("2006-01-02") }
