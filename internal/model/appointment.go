package model

import "time"

// Appointment links a patient and a doctor at a point in time. Referential
// integrity is left to the storage layer's foreign keys.
type Appointment struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	DoctorID    int64     `db:"doctor_id" json:"doctor_id"`
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduled_at"`
	Notes       *string   `db:"notes" json:"notes"`
}

type CreateAppointmentRequest struct {
	PatientID   int64   `json:"patient_id" form:"patient_id" validate:"required"`
	DoctorID    int64   `json:"doctor_id" form:"doctor_id" validate:"required"`
	ScheduledAt string  `json:"scheduled_at" form:"scheduled_at" validate:"required"`
	Notes       *string `json:"notes" form:"notes"`
}
