package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db   *gorm.DB
	grid agenda.Grid
}

func NewAppointmentGormRepository(db *gorm.DB, grid agenda.Grid) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, grid: grid}
}

// --------------------------------------------------
// Servicios
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Citas (consulta por día)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date string,
	includeCancelled bool,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("date = ?", date)

	if !includeCancelled {
		q = q.Where("status <> ?", string(agenda.StatusCancelled))
	}

	var apps []models.Appointment
	if err := q.
		Preload("Service").
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Citas (creación / conflicto)
// --------------------------------------------------

// CreateAppointment vuelve a verificar el conflicto dentro de la misma
// transacción, con las filas del día bloqueadas (FOR UPDATE), para cerrar
// la ventana entre validar y persistir. El índice único parcial sobre
// (date, time) respalda además el caso de dos inicios idénticos.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND status <> ?",
				ap.Date, string(agenda.StatusCancelled),
			).
			Find(&existing).Error; err != nil {
			return err
		}

		occupied := agenda.OccupiedPositions(r.grid, existing)

		start, err := agenda.ParseHM(ap.Time)
		if err != nil {
			return httperr.ErrBusiness("invalid_input")
		}

		if !agenda.RunIsFree(r.grid, occupied, start, r.grid.SlotsNeeded(ap.DurationMin)) {
			return httperr.ErrBusiness("slot_taken")
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Citas (cambio de estado / baja)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Compile-time check
var _ agenda.Repository = (*AppointmentGormRepository)(nil)
