package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository"
)

type billRepository struct {
	db *sqlx.DB
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	query := `
		INSERT INTO bills (patient_id, amount, paid, issued_at)
		VALUES (?, ?, ?, ?)
	`
	bill.IssuedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query, bill.PatientID, bill.Amount, bill.Paid, bill.IssuedAt)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", mapConstraint(err))
	}

	bill.ID, err = res.LastInsertId()
	return err
}

func (r *billRepository) Get(ctx context.Context, id int64) (*model.Bill, error) {
	query := `SELECT * FROM bills WHERE id = ?`
	var bill model.Bill
	if err := r.db.GetContext(ctx, &bill, query, id); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bills WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return requireRow(res)
}

func (r *billRepository) List(ctx context.Context) ([]*model.Bill, error) {
	query := `SELECT * FROM bills`
	bills := []*model.Bill{}
	err := r.db.SelectContext(ctx, &bills, query)
	return bills, err
}
