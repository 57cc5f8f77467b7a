package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository"
)

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `INSERT INTO doctors (name, specialty, phone) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, doctor.Name, doctor.Specialty, doctor.Phone)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	doctor.ID, err = res.LastInsertId()
	return err
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE id = ?`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `UPDATE doctors SET name = ?, specialty = ?, phone = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, doctor.Name, doctor.Specialty, doctor.Phone, doctor.ID)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return requireRow(res)
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM doctors WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return requireRow(res)
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors`
	doctors := []*model.Doctor{}
	err := r.db.SelectContext(ctx, &doctors, query)
	return doctors, err
}
