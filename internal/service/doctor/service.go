package doctor

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
	repo     repository.DoctorRepository
	validate *validator.Validate
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.BadRequest("name is required", nil)
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	doctor := &model.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create doctor: %w", err))
	}
	return doctor, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to get doctor: %w", err))
	}
	return doctor, nil
}

// UpdateDoctor applies present fields only, skipping values that fail to
// coerce.
func (s *Service) UpdateDoctor(ctx context.Context, id int64, req model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := req["name"]; ok {
		if name, ok := model.CoerceString(v); ok {
			doctor.Name = name
		}
	}
	if v, ok := req["specialty"]; ok {
		if specialty, ok := model.CoerceString(v); ok {
			doctor.Specialty = &specialty
		}
	}
	if v, ok := req["phone"]; ok {
		if phone, ok := model.CoerceString(v); ok {
			doctor.Phone = &phone
		}
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to update doctor: %w", err))
	}
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("doctor", err)
		}
		return apperrors.Internal(fmt.Errorf("failed to delete doctor: %w", err))
	}
	return nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list doctors: %w", err))
	}
	return doctors, nil
}
