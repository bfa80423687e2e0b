package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vyv_dulceria/internal/database"
	"vyv_dulceria/internal/session"
)

const (
	loginMaxIntentos = 5
	loginCooldown    = 15 * time.Minute
)

// LoginRateLimit frena la fuerza bruta sobre el login por nombre de usuario.
// Sin Redis configurado no limita nada.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		usuario := c.PostForm("username")
		if usuario == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		cooldownKey := "login_cooldown:" + usuario
		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			session.AgregarFlash(c, "danger",
				fmt.Sprintf("Demasiados intentos fallidos. Reintenta en %d minutos.", int(ttl.Minutes())+1))
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RegistrarLoginFallido incrementa el contador y activa el cooldown al
// llegar al máximo. Lo llama el handler de login tras credencial incorrecta.
func RegistrarLoginFallido(ctx context.Context, usuario string) {
	if database.Redis == nil || usuario == "" {
		return
	}

	key := "login_attempts:" + usuario
	intentos, _ := database.Redis.Incr(ctx, key).Result()
	database.Redis.Expire(ctx, key, loginCooldown)

	if intentos >= loginMaxIntentos {
		database.Redis.Set(ctx, "login_cooldown:"+usuario, "1", loginCooldown)
		database.Redis.Del(ctx, key)
	}
}

// ReiniciarIntentosLogin limpia contadores tras un login correcto.
func ReiniciarIntentosLogin(ctx context.Context, usuario string) {
	if database.Redis == nil || usuario == "" {
		return
	}
	database.Redis.Del(ctx, "login_attempts:"+usuario, "login_cooldown:"+usuario)
}
