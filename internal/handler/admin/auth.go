package admin

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/medrec/hospital-api/internal/middleware"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(middleware.SessionKeyAdmin) != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	h.render(c, "admin_login.html", nil)
}

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	admin, err := h.auth.Login(c.Request.Context(), username, password, c.ClientIP())
	if err != nil {
		h.flash(c, err.Error())
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyAdmin, admin.Username)

	target := "/admin"
	if v, ok := session.Get(middleware.SessionKeyReturnTo).(string); ok && v != "" {
		target = v
	}
	session.Delete(middleware.SessionKeyReturnTo)
	_ = session.Save()

	c.Redirect(http.StatusFound, target)
}

// Logout clears the session unconditionally.
func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}
