package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medrec/hospital-api/internal/handler"
	"github.com/medrec/hospital-api/internal/model"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.ListDoctors(c.Request.Context())
	if err != nil {
		h.flashError(c, err)
	}
	h.render(c, "admin_doctors.html", gin.H{"doctors": doctors})
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	req := &model.CreateDoctorRequest{Name: c.PostForm("name")}
	if v, ok := c.GetPostForm("specialty"); ok && v != "" {
		req.Specialty = &v
	}
	if v, ok := c.GetPostForm("phone"); ok && v != "" {
		req.Phone = &v
	}

	if _, err := h.doctors.CreateDoctor(c.Request.Context(), req); err != nil {
		h.flashError(c, err)
	} else {
		h.flash(c, "Doctor created")
	}
	c.Redirect(http.StatusFound, "/admin/doctors")
}

func (h *Handler) EditDoctor(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		h.flash(c, "doctor not found")
		c.Redirect(http.StatusFound, "/admin/doctors")
		return
	}

	doctor, err := h.doctors.GetDoctor(c.Request.Context(), id)
	if err != nil {
		h.flashError(c, err)
		c.Redirect(http.StatusFound, "/admin/doctors")
		return
	}
	h.render(c, "admin_doctor_edit.html", gin.H{"doctor": doctor})
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		h.flash(c, "doctor not found")
		c.Redirect(http.StatusFound, "/admin/doctors")
		return
	}

	req := model.UpdateDoctorRequest{}
	for _, field := range []string{"name", "specialty", "phone"} {
		if v, ok := c.GetPostForm(field); ok {
			req[field] = v
		}
	}

	if _, err := h.doctors.UpdateDoctor(c.Request.Context(), id, req); err != nil {
		h.flashError(c, err)
	} else {
		h.flash(c, "Doctor updated")
	}
	c.Redirect(http.StatusFound, "/admin/doctors")
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	if id, err := handler.ParseID(c); err == nil {
		if err := h.doctors.DeleteDoctor(c.Request.Context(), id); err != nil && !apperrors.IsNotFound(err) {
			h.flashError(c, err)
			c.Redirect(http.StatusFound, "/admin/doctors")
			return
		}
	}
	h.flash(c, "Doctor deleted")
	c.Redirect(http.StatusFound, "/admin/doctors")
}
