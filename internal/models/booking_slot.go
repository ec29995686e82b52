package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingSlot is a recurring bookable window: one weekday, one time
// range, one service label. Soft-deleted rows must never reach the
// availability engine; queries go through the repository, which excludes
// them via gorm's DeletedAt handling.
type BookingSlot struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EstablishmentID uint `gorm:"index" json:"establishment_id"`

	Weekday     int    `json:"weekday"` // 0 = Sunday .. 6 = Saturday
	ServiceName string `gorm:"size:100" json:"service_name"`
	StartTime   string `gorm:"size:8" json:"start_time"` // "HH:MM" or "HH:MM:SS"
	EndTime     string `gorm:"size:8" json:"end_time"`
	MaxCapacity int    `json:"max_capacity"`
	Active      bool   `gorm:"default:true" json:"active"`

	DisplayOrder int `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
