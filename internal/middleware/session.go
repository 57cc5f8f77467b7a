package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys shared between the guard and the admin handlers.
const (
	SessionKeyAdmin    = "admin_user"
	SessionKeyReturnTo = "return_to"
)

// RequireAdmin redirects anonymous requests to the login page, capturing the
// originally requested path so a successful login can return to it.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(SessionKeyAdmin) == nil {
			session.Set(SessionKeyReturnTo, c.Request.URL.Path)
			_ = session.Save()
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
