package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medrec/hospital-api/internal/handler"
	"github.com/medrec/hospital-api/internal/model"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.patients.ListPatients(c.Request.Context())
	if err != nil {
		h.flashError(c, err)
	}
	h.render(c, "admin_patients.html", gin.H{"patients": patients})
}

func (h *Handler) CreatePatient(c *gin.Context) {
	req := &model.CreatePatientRequest{Name: c.PostForm("name")}
	if v, ok := c.GetPostForm("age"); ok && v != "" {
		if age, ok := model.CoerceInt(v); ok {
			req.Age = &age
		}
	}
	if v, ok := c.GetPostForm("medical_history"); ok && v != "" {
		req.MedicalHistory = &v
	}

	if _, err := h.patients.CreatePatient(c.Request.Context(), req); err != nil {
		h.flashError(c, err)
	} else {
		h.flash(c, "Patient created")
	}
	c.Redirect(http.StatusFound, "/admin/patients")
}

func (h *Handler) EditPatient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		h.flash(c, "patient not found")
		c.Redirect(http.StatusFound, "/admin/patients")
		return
	}

	patient, err := h.patients.GetPatient(c.Request.Context(), id)
	if err != nil {
		h.flashError(c, err)
		c.Redirect(http.StatusFound, "/admin/patients")
		return
	}
	h.render(c, "admin_patient_edit.html", gin.H{"patient": patient})
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		h.flash(c, "patient not found")
		c.Redirect(http.StatusFound, "/admin/patients")
		return
	}

	req := model.UpdatePatientRequest{}
	for _, field := range []string{"name", "age", "medical_history"} {
		if v, ok := c.GetPostForm(field); ok {
			req[field] = v
		}
	}

	if _, err := h.patients.UpdatePatient(c.Request.Context(), id, req); err != nil {
		h.flashError(c, err)
	} else {
		h.flash(c, "Patient updated")
	}
	c.Redirect(http.StatusFound, "/admin/patients")
}

// DeletePatient flashes success even when the record was already gone; the
// admin-visible outcome is the same either way.
func (h *Handler) DeletePatient(c *gin.Context) {
	if id, err := handler.ParseID(c); err == nil {
		if err := h.patients.DeletePatient(c.Request.Context(), id); err != nil && !apperrors.IsNotFound(err) {
			h.flashError(c, err)
			c.Redirect(http.StatusFound, "/admin/patients")
			return
		}
	}
	h.flash(c, "Patient deleted")
	c.Redirect(http.StatusFound, "/admin/patients")
}
