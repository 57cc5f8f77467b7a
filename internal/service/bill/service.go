package bill

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
	repo     repository.BillRepository
	validate *validator.Validate
}

func NewService(repo repository.BillRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.Bill, error) {
	if req.Amount == nil {
		return nil, apperrors.BadRequest("amount must be a number", nil)
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	bill := &model.Bill{
		PatientID: req.PatientID,
		Amount:    *req.Amount,
		Paid:      req.Paid,
	}

	if err := s.repo.Create(ctx, bill); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperrors.BadRequest("patient_id must reference an existing patient", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to create bill: %w", err))
	}
	return bill, nil
}

func (s *Service) GetBill(ctx context.Context, id int64) (*model.Bill, error) {
	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("bill", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to get bill: %w", err))
	}
	return bill, nil
}

func (s *Service) DeleteBill(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("bill", err)
		}
		return apperrors.Internal(fmt.Errorf("failed to delete bill: %w", err))
	}
	return nil
}

func (s *Service) ListBills(ctx context.Context) ([]*model.Bill, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list bills: %w", err))
	}
	return bills, nil
}
