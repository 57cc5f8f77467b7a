package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (name, age, medical_history, created_at)
		VALUES (?, ?, ?, ?)
	`
	patient.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.Age,
		patient.MedicalHistory,
		patient.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	patient.ID, err = res.LastInsertId()
	return err
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = ?`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `UPDATE patients SET name = ?, age = ?, medical_history = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, patient.Name, patient.Age, patient.MedicalHistory, patient.ID)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return requireRow(res)
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM patients WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return requireRow(res)
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY created_at DESC`
	patients := []*model.Patient{}
	err := r.db.SelectContext(ctx, &patients, query)
	return patients, err
}

// requireRow turns a zero-row write into sql.ErrNoRows so services can
// distinguish not-found from success.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
