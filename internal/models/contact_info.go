package models

import "time"

// Registro único con los datos de contacto del salón
type ContactInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Address  string `gorm:"size:255" json:"address"`
	Phone    string `gorm:"size:20" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	Schedule string `gorm:"size:255" json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
