package cart

import (
	"errors"

	"vyv_dulceria/internal/models"
)

var (
	ErrCantidadInvalida  = errors.New("la cantidad debe ser mayor a 0")
	ErrStockInsuficiente = errors.New("stock insuficiente")
)

// Agregar fusiona qty unidades del producto en el carrito, acotado por el
// stock actual. No muta el carrito si la validación falla.
func Agregar(carrito map[string]int, producto models.Product, qty int) error {
	if qty < 1 {
		return ErrCantidadInvalida
	}

	nuevo := carrito[producto.ID] + qty
	if nuevo > producto.Stock {
		return ErrStockInsuficiente
	}

	carrito[producto.ID] = nuevo
	return nil
}

// Quitar elimina la línea completa. Quitar dos veces el mismo id es inocuo.
func Quitar(carrito map[string]int, productID string) {
	delete(carrito, productID)
}

// QuitarUno descuenta una unidad; al llegar a cero la línea desaparece.
func QuitarUno(carrito map[string]int, productID string) {
	if qty, ok := carrito[productID]; ok {
		if qty > 1 {
			carrito[productID] = qty - 1
		} else {
			delete(carrito, productID)
		}
	}
}

// Resolver cruza el carrito con el catálogo actual: las líneas de productos
// borrados se descartan en silencio y se calculan subtotales y total.
func Resolver(carrito map[string]int, productos map[string]models.Product) ([]models.CartItem, float64) {
	items := make([]models.CartItem, 0, len(carrito))
	var total float64

	for id, qty := range carrito {
		if qty < 1 {
			continue
		}
		p, ok := productos[id]
		if !ok {
			continue
		}

		subtotal := p.Price * float64(qty)
		total += subtotal
		items = append(items, models.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Subtotal:  subtotal,
			Img:       p.Img,
		})
	}

	return items, total
}

// IDs devuelve los identificadores presentes en el carrito.
func IDs(carrito map[string]int) []string {
	ids := make([]string, 0, len(carrito))
	for id := range carrito {
		ids = append(ids, id)
	}
	return ids
}
