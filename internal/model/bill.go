package model

import "time"

type Bill struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Paid      bool      `db:"paid" json:"paid"`
	IssuedAt  time.Time `db:"issued_at" json:"issued_at"`
}

type CreateBillRequest struct {
	PatientID int64    `json:"patient_id" form:"patient_id" validate:"required"`
	Amount    *float64 `json:"amount" form:"amount" validate:"required"`
	Paid      bool     `json:"paid" form:"paid"`
}
