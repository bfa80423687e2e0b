package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vyv_dulceria/internal/cache"
	"vyv_dulceria/internal/database"
	"vyv_dulceria/internal/session"
	"vyv_dulceria/internal/store"
	"vyv_dulceria/internal/utils"
	"vyv_dulceria/internal/validators"
)

// 🟢 POST /checkout - formulario: nombre, direccion, telefono, correo,
// tarjeta, cvv, exp. Valida campo por campo y corta en el primero que falla.
func Checkout(c *gin.Context) {
	carrito := session.Carrito(c)
	if len(carrito) == 0 {
		session.AgregarFlash(c, "danger", "El carrito está vacío. ¡Añade algo antes de pagar!")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	cliente, mensaje := leerFormularioPago(c)
	if mensaje != "" {
		session.AgregarFlash(c, "danger", mensaje)
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	pedido, err := database.Store.PlaceOrder(c.Request.Context(), carrito, cliente)
	if err != nil {
		var insuf *store.ErrStockInsuficiente
		switch {
		case errors.As(err, &insuf):
			session.AgregarFlash(c, "danger", fmt.Sprintf("Stock insuficiente para %s.", insuf.Producto))
			c.Redirect(http.StatusSeeOther, "/cart")
		case errors.Is(err, store.ErrCarritoVacio):
			// Todas las líneas apuntaban a productos ya borrados.
			session.LimpiarCarrito(c)
			session.AgregarFlash(c, "danger", "El carrito está vacío. ¡Añade algo antes de pagar!")
			c.Redirect(http.StatusSeeOther, "/")
		default:
			session.AgregarFlash(c, "danger", "No se pudo procesar el pedido. Intenta de nuevo.")
			c.Redirect(http.StatusSeeOther, "/cart")
		}
		return
	}

	session.LimpiarCarrito(c)
	cache.InvalidarListado(c.Request.Context())

	// Aviso a la tienda, sin bloquear la respuesta.
	go utils.NotificarNuevoPedido(pedido)

	session.AgregarFlash(c, "success",
		fmt.Sprintf("¡Gracias %s! Tu pedido #%s ha sido procesado.", cliente.Nombre, pedido.ID))
	c.Redirect(http.StatusSeeOther, "/")
}

// leerFormularioPago valida los campos en el orden del formulario y devuelve
// el mensaje del primer fallo, o los datos del cliente listos para el pedido.
// La tarjeta se valida pero nunca se almacena ni se cobra.
func leerFormularioPago(c *gin.Context) (store.Cliente, string) {
	nombre := strings.TrimSpace(c.PostForm("nombre"))
	direccion := strings.TrimSpace(c.PostForm("direccion"))
	telefono := validators.SoloDigitos(c.PostForm("telefono"))
	correo := strings.TrimSpace(c.PostForm("correo"))
	tarjeta := validators.SoloDigitos(c.PostForm("tarjeta"))
	cvv := validators.SoloDigitos(c.PostForm("cvv"))
	exp := strings.TrimSpace(c.PostForm("exp"))

	if nombre == "" || direccion == "" {
		return store.Cliente{}, "Nombre y dirección son obligatorios."
	}
	if !validators.TelefonoValido(telefono) {
		return store.Cliente{}, "Teléfono inválido. Solo números."
	}
	if !validators.CorreoValido(correo) {
		return store.Cliente{}, "Correo inválido."
	}
	if !validators.TarjetaValida(tarjeta) {
		return store.Cliente{}, "Tarjeta inválida."
	}
	if !validators.CVVValido(cvv) {
		return store.Cliente{}, "CVV inválido."
	}
	if !validators.ExpiracionValida(exp) {
		return store.Cliente{}, "Expiración inválida. Usa MM/AA."
	}

	return store.Cliente{
		Nombre:    nombre,
		Direccion: direccion,
		Telefono:  telefono,
		Correo:    correo,
	}, ""
}
