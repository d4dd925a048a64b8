package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BellaEstudioDev/salon-agenda/internal/config"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Appointment{},
		&models.GalleryImage{},
		&models.ContactInfo{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedContactInfo(db)

	return db
}

// seedContactInfo garantiza el registro único de contacto que el sitio
// público siempre consulta.
func seedContactInfo(db *gorm.DB) {
	var count int64
	db.Model(&models.ContactInfo{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&models.ContactInfo{
		Address:  "Calle Mayor 12, Madrid",
		Phone:    "+34 910 000 000",
		Email:    "hola@peluqueriabella.com",
		Schedule: "Lunes a sábado, 09:00–18:00",
	})
}
