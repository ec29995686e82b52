package models

import "time"

type GalleryImage struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EstablishmentID uint `gorm:"index" json:"establishment_id"`

	ObjectKey string `gorm:"size:255;not null" json:"-"`
	URL       string `gorm:"size:512;not null" json:"url"`
	Position  int    `gorm:"default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
