package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Sin archivo .env - se usan las variables de entorno del sistema")
	} else {
		log.Println("✅ Archivo .env cargado")
	}
}

// Getenv devuelve la variable recortada, o def si está vacía.
func Getenv(clave, def string) string {
	v := strings.TrimSpace(os.Getenv(clave))
	if v == "" {
		return def
	}
	return v
}

// Credencial del admin. Con ADMIN_PASSWORD_HASH (argon2id) se ignora la
// contraseña en claro; ADMIN_PASSWORD queda como comodidad de desarrollo.
func AdminUser() string {
	return Getenv("ADMIN_USER", "admin")
}

func AdminPasswordHash() string {
	return Getenv("ADMIN_PASSWORD_HASH", "")
}

func AdminPassword() string {
	return Getenv("ADMIN_PASSWORD", "1234")
}

func SessionSecret() string {
	return Getenv("SESSION_SECRET", "")
}

func Port() string {
	return Getenv("PORT", "8080")
}
