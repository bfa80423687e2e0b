package routes

import (
	"github.com/gin-gonic/gin"

	"vyv_dulceria/internal/handlers"
	"vyv_dulceria/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	// Tienda
	r.GET("/", handlers.Index)
	r.GET("/buscar", handlers.Buscar)
	r.GET("/salud", handlers.Salud)

	// Carrito
	r.POST("/add_to_cart", handlers.AddToCart)
	r.GET("/cart", handlers.ViewCart)
	r.GET("/remove_item/:id", handlers.RemoveItem)
	r.GET("/remove_one/:id", handlers.RemoveOne)
	r.POST("/checkout", handlers.Checkout)

	// Acceso admin
	r.GET("/login", handlers.LoginForm)
	r.POST("/login", middleware.LoginRateLimit(), handlers.Login)
	r.GET("/logout", handlers.Logout)

	// Panel admin
	admin := r.Group("/admin", middleware.RequireAdmin)
	admin.GET("", handlers.AdminPanel)
	admin.GET("/product/new", handlers.NuevoProductoForm)
	admin.POST("/product/new", handlers.CrearProducto)
	admin.GET("/product/:id/edit", handlers.EditarProductoForm)
	admin.POST("/product/:id/edit", handlers.ActualizarProducto)
	admin.POST("/product/:id/delete", handlers.EliminarProducto)
	admin.POST("/product/:id/stock", handlers.AjustarStock)
	admin.POST("/order/:id/status", handlers.ActualizarEstadoPedido)
}
