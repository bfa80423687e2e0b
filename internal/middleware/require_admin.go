package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vyv_dulceria/internal/session"
)

// RequireAdmin exige la marca de sesión del admin; sin ella redirige al login.
func RequireAdmin(c *gin.Context) {
	if !session.EsAdmin(c) {
		session.AgregarFlash(c, "danger", "Inicia sesión para acceder.")
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Next()
}
