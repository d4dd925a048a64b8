package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	URL         string `gorm:"size:500;not null" json:"url"`
	ObjectKey   string `gorm:"size:255;uniqueIndex" json:"-"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
