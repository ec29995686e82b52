package models

import "time"

type MenuProduct struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EstablishmentID uint `json:"establishment_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"size:50" json:"category"`
	Stock       int     `gorm:"default:0" json:"stock"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
