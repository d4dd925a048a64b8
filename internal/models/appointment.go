package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Fecha y hora en la zona del salón; la hora siempre alineada a la grilla.
	// Índice único parcial: dos citas activas no pueden compartir inicio
	// (una cancelada no bloquea el slot).
	Date string `gorm:"size:10;index;uniqueIndex:idx_citas_fecha_hora,where:status <> 'cancelled'" json:"date"`
	Time string `gorm:"size:5;uniqueIndex:idx_citas_fecha_hora,where:status <> 'cancelled'" json:"time"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Copia desnormalizada de la duración del servicio al momento de reservar
	DurationMin int `json:"duration_min"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
