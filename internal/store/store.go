package store

import (
	"context"
	"errors"
	"fmt"

	"vyv_dulceria/internal/models"
)

var (
	ErrNoEncontrado   = errors.New("registro no encontrado")
	ErrCarritoVacio   = errors.New("carrito vacío")
	ErrEstadoInvalido = errors.New("estado de pedido inválido")
	ErrStockNegativo  = errors.New("el stock no puede quedar en negativo")
)

// ErrStockInsuficiente señala qué producto agotó stock durante el checkout.
type ErrStockInsuficiente struct {
	Producto string
}

func (e *ErrStockInsuficiente) Error() string {
	return fmt.Sprintf("stock insuficiente para %s", e.Producto)
}

// Cliente son los datos ya validados del formulario de pago.
type Cliente struct {
	Nombre    string
	Direccion string
	Telefono  string
	Correo    string
}

// Store es el repositorio de productos y pedidos. La implementación Postgres
// es la de producción; la de memoria sirve para desarrollo y pruebas.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) (map[string]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) error
	UpdateProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// AdjustStock aplica un delta con signo y devuelve el stock resultante.
	// Falla con ErrStockNegativo sin tocar nada si el resultado sería < 0.
	AdjustStock(ctx context.Context, id string, delta int) (int, error)

	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error

	// PlaceOrder revalida el stock de cada línea del carrito bajo bloqueo,
	// descuenta stock y registra el pedido. Todo o nada: si una línea falla,
	// ningún stock cambia y no queda pedido.
	PlaceOrder(ctx context.Context, carrito map[string]int, cliente Cliente) (models.Order, error)

	Ping(ctx context.Context) error
	Close()
}
