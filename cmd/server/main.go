package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"vyv_dulceria/internal/config"
	"vyv_dulceria/internal/database"
	"vyv_dulceria/internal/routes"
	"vyv_dulceria/internal/services"
	"vyv_dulceria/internal/session"
)

func main() {
	config.Load()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Valor de desarrollo; en producción SESSION_SECRET es obligatorio.
		secret = "v&v_super_secret_key"
		log.Println("⚠️  SESSION_SECRET faltante - usando la clave de desarrollo")
	}
	session.Init(secret)

	database.ConnectAll()
	defer database.CloseAll()

	services.ConnectMinio()

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🍬 Dulcería V&V escuchando en el puerto", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Error del servidor:", err)
	}
}
