package models

import (
	"time"

	"gorm.io/gorm"
)

// Exception type discriminator values.
const (
	ExceptionTypePeriod    = "period"
	ExceptionTypeSingleDay = "single_day"
	ExceptionTypeService   = "service"
	ExceptionTypeTimeSlots = "time_slots"
)

// SlotException is one closure rule. Which columns are meaningful depends
// on ExceptionType; the usecase layer converts each row into the matching
// engine variant and never reads a column the variant does not carry.
type SlotException struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EstablishmentID uint `gorm:"index" json:"establishment_id"`

	ExceptionType string `gorm:"size:20;not null" json:"exception_type"`

	// period
	StartDate string `gorm:"size:10" json:"start_date,omitempty"` // "YYYY-MM-DD"
	EndDate   string `gorm:"size:10" json:"end_date,omitempty"`

	// single_day, service
	Date string `gorm:"size:10" json:"date,omitempty"`

	// service, time_slots
	BookingSlotID uint `json:"booking_slot_id,omitempty"`

	// time_slots: JSON array of day-grid indices
	ClosedSlots string `gorm:"type:text" json:"closed_slots,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
