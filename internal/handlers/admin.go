package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vyv_dulceria/internal/cache"
	"vyv_dulceria/internal/database"
	"vyv_dulceria/internal/models"
	"vyv_dulceria/internal/services"
	"vyv_dulceria/internal/session"
	"vyv_dulceria/internal/store"
)

// 🟢 GET /admin - panel con catálogo y pedidos
func AdminPanel(c *gin.Context) {
	ctx := c.Request.Context()

	productos, err := database.Store.ListProducts(ctx)
	if err != nil {
		log.Println("❌ Error listando productos:", err)
		c.String(http.StatusInternalServerError, "Error del servidor")
		return
	}

	pedidos, err := database.Store.ListOrders(ctx)
	if err != nil {
		log.Println("❌ Error listando pedidos:", err)
		c.String(http.StatusInternalServerError, "Error del servidor")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Productos": productos,
		"Pedidos":   pedidos,
		"Estados":   models.EstadosPedido,
		"Flashes":   session.Flashes(c),
	})
}

// 🟢 GET /admin/product/new
func NuevoProductoForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_product_form.html", gin.H{
		"Modo":    "new",
		"Flashes": session.Flashes(c),
	})
}

// 🟢 POST /admin/product/new - formulario: name, price, stock, img, imagen (archivo)
func CrearProducto(c *gin.Context) {
	datos, mensaje := leerFormularioProducto(c)
	if mensaje != "" {
		session.AgregarFlash(c, "danger", mensaje)
		c.Redirect(http.StatusSeeOther, "/admin/product/new")
		return
	}

	if datos.Img == "" {
		datos.Img = models.ImagenPorDefecto
	}
	datos.ID = uuid.NewString()

	if err := database.Store.CreateProduct(c.Request.Context(), datos); err != nil {
		log.Println("❌ Error creando producto:", err)
		session.AgregarFlash(c, "danger", "No se pudo crear el producto.")
		c.Redirect(http.StatusSeeOther, "/admin/product/new")
		return
	}

	cache.InvalidarListado(c.Request.Context())
	go services.IndexarProducto(datos)

	session.AgregarFlash(c, "success", "Producto creado.")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// 🟢 GET /admin/product/:id/edit
func EditarProductoForm(c *gin.Context) {
	producto, err := database.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		session.AgregarFlash(c, "danger", "Producto no encontrado.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	c.HTML(http.StatusOK, "admin_product_form.html", gin.H{
		"Modo":     "edit",
		"Producto": producto,
		"Flashes":  session.Flashes(c),
	})
}

// 🟢 POST /admin/product/:id/edit
func ActualizarProducto(c *gin.Context) {
	id := c.Param("id")

	actual, err := database.Store.GetProduct(c.Request.Context(), id)
	if err != nil {
		session.AgregarFlash(c, "danger", "Producto no encontrado.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	datos, mensaje := leerFormularioProducto(c)
	if mensaje != "" {
		session.AgregarFlash(c, "danger", mensaje)
		c.Redirect(http.StatusSeeOther, "/admin/product/"+id+"/edit")
		return
	}

	// Imagen en blanco: se conserva la existente.
	if datos.Img == "" {
		datos.Img = actual.Img
	}
	datos.ID = id

	if err := database.Store.UpdateProduct(c.Request.Context(), datos); err != nil {
		log.Println("❌ Error actualizando producto:", err)
		session.AgregarFlash(c, "danger", "No se pudo actualizar el producto.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	cache.InvalidarListado(c.Request.Context())
	go services.IndexarProducto(datos)

	session.AgregarFlash(c, "success", "Producto actualizado.")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// 🟢 POST /admin/product/:id/delete
func EliminarProducto(c *gin.Context) {
	id := c.Param("id")

	if err := database.Store.DeleteProduct(c.Request.Context(), id); err != nil {
		session.AgregarFlash(c, "danger", "Producto no encontrado.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	cache.InvalidarListado(c.Request.Context())
	go services.DesindexarProducto(id)

	session.AgregarFlash(c, "info", "Producto eliminado.")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// 🟢 POST /admin/product/:id/stock - formulario: delta (con signo)
func AjustarStock(c *gin.Context) {
	delta, err := strconv.Atoi(strings.TrimSpace(c.PostForm("delta")))
	if err != nil {
		session.AgregarFlash(c, "danger", "Cambio de stock inválido.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	id := c.Param("id")
	nuevo, err := database.Store.AdjustStock(c.Request.Context(), id, delta)
	switch {
	case errors.Is(err, store.ErrNoEncontrado):
		session.AgregarFlash(c, "danger", "Producto no encontrado.")
	case errors.Is(err, store.ErrStockNegativo):
		session.AgregarFlash(c, "danger", "El stock no puede quedar en negativo.")
	case err != nil:
		log.Println("❌ Error ajustando stock:", err)
		session.AgregarFlash(c, "danger", "No se pudo ajustar el stock.")
	default:
		cache.InvalidarListado(c.Request.Context())
		if producto, gerr := database.Store.GetProduct(c.Request.Context(), id); gerr == nil {
			go services.IndexarProducto(producto)
		}
		log.Printf("✅ Stock ajustado para %s: nuevo stock %d", id, nuevo)
		session.AgregarFlash(c, "success", "Stock actualizado.")
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// 🟢 POST /admin/order/:id/status - formulario: status
func ActualizarEstadoPedido(c *gin.Context) {
	estado := strings.TrimSpace(c.PostForm("status"))
	if !models.EstadoValido(estado) {
		session.AgregarFlash(c, "danger", "Estado inválido.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	err := database.Store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), estado)
	switch {
	case errors.Is(err, store.ErrNoEncontrado):
		session.AgregarFlash(c, "danger", "Pedido no encontrado.")
	case err != nil:
		log.Println("❌ Error actualizando estado:", err)
		session.AgregarFlash(c, "danger", "No se pudo actualizar el estado.")
	default:
		session.AgregarFlash(c, "success", "Estado actualizado.")
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// leerFormularioProducto valida nombre, precio y stock, y resuelve la imagen:
// archivo subido a MinIO si lo hay, si no la URL del campo img.
func leerFormularioProducto(c *gin.Context) (models.Product, string) {
	name := strings.TrimSpace(c.PostForm("name"))
	priceRaw := strings.TrimSpace(c.PostForm("price"))
	stockRaw := strings.TrimSpace(c.PostForm("stock"))
	img := strings.TrimSpace(c.PostForm("img"))

	if name == "" {
		return models.Product{}, "Nombre requerido."
	}

	price, errPrecio := strconv.ParseFloat(priceRaw, 64)
	stock, errStock := strconv.Atoi(stockRaw)
	if errPrecio != nil || errStock != nil {
		return models.Product{}, "Precio o stock inválido."
	}
	if price < 0 || stock < 0 {
		return models.Product{}, "Precio y stock deben ser >= 0."
	}

	if archivo, err := c.FormFile("imagen"); err == nil && services.MinioClient != nil {
		url, uerr := services.SubirImagen(c.Request.Context(), archivo)
		if uerr != nil {
			log.Println("⚠️  Error subiendo imagen a MinIO:", uerr)
		} else {
			img = url
		}
	}

	return models.Product{Name: name, Price: price, Stock: stock, Img: img}, ""
}
