package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vyv_dulceria/internal/cache"
	"vyv_dulceria/internal/cart"
	"vyv_dulceria/internal/database"
	"vyv_dulceria/internal/services"
	"vyv_dulceria/internal/session"
)

// 🟢 GET / - listado de productos
func Index(c *gin.Context) {
	ctx := c.Request.Context()

	productos := cache.ListadoProductos(ctx)
	if productos == nil {
		var err error
		productos, err = database.Store.ListProducts(ctx)
		if err != nil {
			log.Println("❌ Error listando productos:", err)
			c.String(http.StatusInternalServerError, "Error del servidor")
			return
		}
		cache.GuardarListado(ctx, productos)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Productos": productos,
		"Busqueda":  "",
		"Flashes":   session.Flashes(c),
		"EsAdmin":   session.EsAdmin(c),
	})
}

// 🟢 GET /buscar?q= - búsqueda de productos
func Buscar(c *gin.Context) {
	consulta := c.Query("q")
	if consulta == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// Elastic primero; si no está disponible, filtro sobre el listado.
	productos, err := services.BuscarProductos(consulta)
	if err != nil {
		todos, lerr := database.Store.ListProducts(c.Request.Context())
		if lerr != nil {
			log.Println("❌ Error listando productos:", lerr)
			c.String(http.StatusInternalServerError, "Error del servidor")
			return
		}
		productos = services.FiltrarPorNombre(todos, consulta)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Productos": productos,
		"Busqueda":  consulta,
		"Flashes":   session.Flashes(c),
		"EsAdmin":   session.EsAdmin(c),
	})
}

// 🟢 POST /add_to_cart - formulario: id, quantity
func AddToCart(c *gin.Context) {
	id := c.PostForm("id")
	qty, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if id == "" || err != nil {
		session.AgregarFlash(c, "danger", "Datos inválidos.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if qty < 1 {
		session.AgregarFlash(c, "danger", "La cantidad debe ser mayor a 0.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	producto, err := database.Store.GetProduct(c.Request.Context(), id)
	if err != nil {
		session.AgregarFlash(c, "danger", "Producto no encontrado.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	carrito := session.Carrito(c)
	if err := cart.Agregar(carrito, producto, qty); err != nil {
		session.AgregarFlash(c, "danger", "Stock insuficiente.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	session.GuardarCarrito(c, carrito)
	session.AgregarFlash(c, "success", "¡"+producto.Name+" añadido!")
	c.Redirect(http.StatusSeeOther, "/")
}

// 🟢 GET /cart - carrito resuelto contra el catálogo actual
func ViewCart(c *gin.Context) {
	carrito := session.Carrito(c)

	productos, err := database.Store.GetProductsByIDs(c.Request.Context(), cart.IDs(carrito))
	if err != nil {
		log.Println("❌ Error resolviendo carrito:", err)
		c.String(http.StatusInternalServerError, "Error del servidor")
		return
	}

	items, total := cart.Resolver(carrito, productos)
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items":   items,
		"Total":   total,
		"Flashes": session.Flashes(c),
		"EsAdmin": session.EsAdmin(c),
	})
}

// 🟢 GET /remove_item/:id - elimina la línea completa
func RemoveItem(c *gin.Context) {
	carrito := session.Carrito(c)
	if _, ok := carrito[c.Param("id")]; ok {
		cart.Quitar(carrito, c.Param("id"))
		session.GuardarCarrito(c, carrito)
		session.AgregarFlash(c, "info", "Producto eliminado")
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// 🟢 GET /remove_one/:id - descuenta una unidad
func RemoveOne(c *gin.Context) {
	carrito := session.Carrito(c)
	if _, ok := carrito[c.Param("id")]; ok {
		cart.QuitarUno(carrito, c.Param("id"))
		session.GuardarCarrito(c, carrito)
		session.AgregarFlash(c, "info", "Se quitó una unidad.")
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// 🟢 GET /salud
func Salud(c *gin.Context) {
	if err := database.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "detalle": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
