package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

type Service struct {
	repo     repository.PatientRepository
	validate *validator.Validate
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.BadRequest("name is required", nil)
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	patient := &model.Patient{
		Name:           req.Name,
		Age:            req.Age,
		MedicalHistory: req.MedicalHistory,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create patient: %w", err))
	}
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to get patient: %w", err))
	}
	return patient, nil
}

// UpdatePatient applies the fields present in req to the stored record.
// A present field whose value fails to coerce is skipped, leaving the prior
// value in place.
func (s *Service) UpdatePatient(ctx context.Context, id int64, req model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := req["name"]; ok {
		if name, ok := model.CoerceString(v); ok {
			patient.Name = name
		}
	}
	if v, ok := req["age"]; ok {
		if age, ok := model.CoerceInt(v); ok {
			patient.Age = &age
		}
	}
	if v, ok := req["medical_history"]; ok {
		if history, ok := model.CoerceString(v); ok {
			patient.MedicalHistory = &history
		}
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to update patient: %w", err))
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("patient", err)
		}
		return apperrors.Internal(fmt.Errorf("failed to delete patient: %w", err))
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list patients: %w", err))
	}
	return patients, nil
}
