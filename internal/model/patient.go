package model

import "time"

// Patient is a person receiving care. Appointments and bills reference it
// by id; deleting a patient does not cascade.
type Patient struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Age            *int      `db:"age" json:"age"`
	MedicalHistory *string   `db:"medical_history" json:"medical_history"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreatePatientRequest struct {
	Name           string  `json:"name" form:"name" validate:"required"`
	Age            *int    `json:"age" form:"age" validate:"omitempty,gte=0"`
	MedicalHistory *string `json:"medical_history" form:"medical_history"`
}

// UpdatePatientRequest carries a partial update. Only fields present in the
// request body are applied; values that fail to coerce are skipped.
type UpdatePatientRequest map[string]interface{}
