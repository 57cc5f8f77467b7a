package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

type Service struct {
	repo     repository.AppointmentRepository
	validate *validator.Validate
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateAppointment does not verify that the referenced patient and doctor
// exist; that is left to the storage layer's foreign keys.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	scheduledAt, err := model.ParseDateTime(req.ScheduledAt)
	if err != nil {
		return nil, apperrors.BadRequest("scheduled_at must be an ISO date-time", err)
	}

	appointment := &model.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperrors.BadRequest("patient_id and doctor_id must reference existing records", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to create appointment: %w", err))
	}
	return appointment, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to get appointment: %w", err))
	}
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("appointment", err)
		}
		return apperrors.Internal(fmt.Errorf("failed to delete appointment: %w", err))
	}
	return nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list appointments: %w", err))
	}
	return appointments, nil
}
