package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vyv_dulceria/internal/config"
	"vyv_dulceria/internal/middleware"
	"vyv_dulceria/internal/session"
	"vyv_dulceria/internal/utils"
)

// 🟢 GET /login
func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": session.Flashes(c),
	})
}

// 🟢 POST /login - formulario: username, password
func Login(c *gin.Context) {
	usuario := c.PostForm("username")
	password := c.PostForm("password")

	if usuario != config.AdminUser() || !passwordCorrecto(password) {
		middleware.RegistrarLoginFallido(c.Request.Context(), usuario)
		session.AgregarFlash(c, "danger", "Error de acceso")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	middleware.ReiniciarIntentosLogin(c.Request.Context(), usuario)
	session.MarcarAdmin(c, usuario)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// 🟢 GET /logout
func Logout(c *gin.Context) {
	session.CerrarSesion(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// passwordCorrecto prefiere el hash argon2id; la contraseña en claro del
// .env queda solo como comodidad de desarrollo.
func passwordCorrecto(password string) bool {
	if hash := config.AdminPasswordHash(); hash != "" {
		ok, err := utils.VerifyPassword(password, hash)
		return err == nil && ok
	}
	return password == config.AdminPassword()
}
