package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EstablishmentID uint          `json:"establishment_id"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"establishment"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BookingSlotID uint        `json:"booking_slot_id"`
	BookingSlot   BookingSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking_slot"`

	Date        string `gorm:"size:10;index" json:"date"` // "YYYY-MM-DD"
	Time        string `gorm:"size:5" json:"time"`        // "HH:MM"
	PartySize   int    `json:"party_size"`
	ServiceName string `gorm:"size:100" json:"service_name"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
