package repository

import (
	"context"
	"errors"

	"github.com/medrec/hospital-api/internal/model"
)

// ErrForeignKey reports a write that references a record that does not exist.
var ErrForeignKey = errors.New("referenced record does not exist")

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id int64) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Patient, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	Update(ctx context.Context, doctor *model.Doctor) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Doctor, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Appointment, error)
}

type BillRepository interface {
	Create(ctx context.Context, bill *model.Bill) error
	Get(ctx context.Context, id int64) (*model.Bill, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Bill, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	Count(ctx context.Context) (int, error)
}
