package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the public templated pages. The pages carry no data; the
// front-end fetches everything it needs from the JSON API.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.page("index.html"))
	r.GET("/dashboard", h.page("dashboard.html"))
	r.GET("/patients", h.page("patients.html"))
	r.GET("/doctors", h.page("doctors.html"))
	r.GET("/appointments", h.page("appointments.html"))
	r.GET("/billing", h.page("billing.html"))
	r.GET("/reports", h.page("reports.html"))
}

func (h *Handler) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, nil)
	}
}

// NotFound renders the 404 page for unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"status": "healthy",
		},
	})
}
