package model

type Doctor struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Specialty *string `db:"specialty" json:"specialty"`
	Phone     *string `db:"phone" json:"phone"`
}

type CreateDoctorRequest struct {
	Name      string  `json:"name" form:"name" validate:"required"`
	Specialty *string `json:"specialty" form:"specialty"`
	Phone     *string `json:"phone" form:"phone"`
}

type UpdateDoctorRequest map[string]interface{}
