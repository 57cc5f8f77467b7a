package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medrec/hospital-api/internal/handler"
	"github.com/medrec/hospital-api/internal/model"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

// ListAppointments also loads the patient and doctor lists so the create
// form can populate its reference selectors.
func (h *Handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	appointments, err := h.appointments.ListAppointments(ctx)
	if err != nil {
		h.flashError(c, err)
	}
	patients, err := h.patients.ListPatients(ctx)
	if err != nil {
		h.flashError(c, err)
	}
	doctors, err := h.doctors.ListDoctors(ctx)
	if err != nil {
		h.flashError(c, err)
	}

	h.render(c, "admin_appointments.html", gin.H{
		"appointments": appointments,
		"patients":     patients,
		"doctors":      doctors,
	})
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	patientID, perr := strconv.ParseInt(c.PostForm("patient_id"), 10, 64)
	doctorID, derr := strconv.ParseInt(c.PostForm("doctor_id"), 10, 64)
	if perr != nil || derr != nil {
		h.flash(c, "patient and doctor are required")
		c.Redirect(http.StatusFound, "/admin/appointments")
		return
	}

	req := &model.CreateAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: c.PostForm("scheduled_at"),
	}
	if v, ok := c.GetPostForm("notes"); ok && v != "" {
		req.Notes = &v
	}

	if _, err := h.appointments.CreateAppointment(c.Request.Context(), req); err != nil {
		h.flashError(c, err)
	} else {
		h.flash(c, "Appointment created")
	}
	c.Redirect(http.StatusFound, "/admin/appointments")
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if id, err := handler.ParseID(c); err == nil {
		if err := h.appointments.DeleteAppointment(c.Request.Context(), id); err != nil && !apperrors.IsNotFound(err) {
			h.flashError(c, err)
			c.Redirect(http.StatusFound, "/admin/appointments")
			return
		}
	}
	h.flash(c, "Appointment deleted")
	c.Redirect(http.StatusFound, "/admin/appointments")
}
