package admin

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/medrec/hospital-api/internal/middleware"
	"github.com/medrec/hospital-api/internal/service/appointment"
	"github.com/medrec/hospital-api/internal/service/auth"
	"github.com/medrec/hospital-api/internal/service/bill"
	"github.com/medrec/hospital-api/internal/service/doctor"
	"github.com/medrec/hospital-api/internal/service/patient"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

// Handler serves the session-authenticated admin console: HTML forms over
// the same records as the JSON API, with redirect-and-flash semantics.
type Handler struct {
	auth         *auth.Service
	patients     *patient.Service
	doctors      *doctor.Service
	appointments *appointment.Service
	bills        *bill.Service
}

func NewHandler(
	authSvc *auth.Service,
	patientSvc *patient.Service,
	doctorSvc *doctor.Service,
	appointmentSvc *appointment.Service,
	billSvc *bill.Service,
) *Handler {
	return &Handler{
		auth:         authSvc,
		patients:     patientSvc,
		doctors:      doctorSvc,
		appointments: appointmentSvc,
		bills:        billSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin")

	admin.GET("/login", h.ShowLogin)
	admin.POST("/login", h.Login)
	admin.GET("/logout", h.Logout)

	guarded := admin.Group("", middleware.RequireAdmin())
	{
		guarded.GET("", h.Dashboard)

		guarded.GET("/patients", h.ListPatients)
		guarded.POST("/patients", h.CreatePatient)
		guarded.GET("/patients/:id/edit", h.EditPatient)
		guarded.POST("/patients/:id/edit", h.UpdatePatient)
		guarded.POST("/patients/:id/delete", h.DeletePatient)

		guarded.GET("/doctors", h.ListDoctors)
		guarded.POST("/doctors", h.CreateDoctor)
		guarded.GET("/doctors/:id/edit", h.EditDoctor)
		guarded.POST("/doctors/:id/edit", h.UpdateDoctor)
		guarded.POST("/doctors/:id/delete", h.DeleteDoctor)

		guarded.GET("/appointments", h.ListAppointments)
		guarded.POST("/appointments", h.CreateAppointment)
		guarded.POST("/appointments/:id/delete", h.DeleteAppointment)

		guarded.GET("/bills", h.ListBills)
		guarded.POST("/bills", h.CreateBill)
		guarded.POST("/bills/:id/delete", h.DeleteBill)
	}
}

// flashError surfaces a service error as a flash message.
func (h *Handler) flashError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		h.flash(c, appErr.Message)
		return
	}
	h.flash(c, "something went wrong")
}

// flash queues a one-time message that survives the redirect.
func (h *Handler) flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// render draws a template with queued flash messages and the logged-in
// username merged into the data map.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	session := sessions.Default(c)
	flashes := session.Flashes()
	_ = session.Save()

	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = flashes
	if user := session.Get(middleware.SessionKeyAdmin); user != nil {
		data["admin"] = user
	}
	c.HTML(http.StatusOK, name, data)
}

func (h *Handler) Dashboard(c *gin.Context) {
	h.render(c, "admin_dashboard.html", nil)
}
