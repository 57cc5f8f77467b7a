package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (patient_id, doctor_id, scheduled_at, notes)
		VALUES (?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.ScheduledAt,
		appointment.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", mapConstraint(err))
	}

	appointment.ID, err = res.LastInsertId()
	return err
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = ?`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM appointments WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return requireRow(res)
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments`
	appointments := []*model.Appointment{}
	err := r.db.SelectContext(ctx, &appointments, query)
	return appointments, err
}
