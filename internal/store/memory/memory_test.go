package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vyv_dulceria/internal/models"
	"vyv_dulceria/internal/store"
)

func nuevoProducto(t *testing.T, s *Store, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{ID: uuid.NewString(), Name: name, Price: price, Stock: stock}
	require.NoError(t, s.CreateProduct(context.Background(), p))
	return p
}

func TestCrearYListarProducto(t *testing.T) {
	s := New()
	ctx := context.Background()

	p := nuevoProducto(t, s, "Paletas de Fresa", 2.5, 8)

	listado, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, listado, 1)
	assert.Equal(t, p.ID, listado[0].ID)
	assert.Equal(t, "Paletas de Fresa", listado[0].Name)
	assert.Equal(t, 2.5, listado[0].Price)
	assert.Equal(t, 8, listado[0].Stock)
}

func TestAjusteDeStockNegativoSeRechaza(t *testing.T) {
	s := New()
	ctx := context.Background()

	p := nuevoProducto(t, s, "Gomitas de Oso", 5.0, 5)

	_, err := s.AdjustStock(ctx, p.ID, -10)
	assert.ErrorIs(t, err, store.ErrStockNegativo)

	// El rechazo no debe tocar el stock.
	actual, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, actual.Stock)

	nuevo, err := s.AdjustStock(ctx, p.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, nuevo)
}

func TestPlaceOrderCarritoVacio(t *testing.T) {
	s := New()

	_, err := s.PlaceOrder(context.Background(), map[string]int{}, store.Cliente{Nombre: "Ana"})
	assert.ErrorIs(t, err, store.ErrCarritoVacio)

	orders, err := s.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderDescuentaStockYRegistraPedido(t *testing.T) {
	s := New()
	ctx := context.Background()

	gomitas := nuevoProducto(t, s, "Gomitas de Oso", 5.0, 10)
	chocolates := nuevoProducto(t, s, "Chocolates Premium", 12.0, 5)

	carrito := map[string]int{gomitas.ID: 2, chocolates.ID: 1}
	order, err := s.PlaceOrder(ctx, carrito, store.Cliente{
		Nombre: "Ana", Direccion: "Calle 1", Telefono: "5512345678", Correo: "ana@ejemplo.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.EstadoPendiente, order.Status)
	assert.Equal(t, 22.0, order.Total)
	assert.Contains(t, order.Productos, "Gomitas de Oso (x2)")
	assert.Contains(t, order.Productos, "Chocolates Premium (x1)")

	g, _ := s.GetProduct(ctx, gomitas.ID)
	c, _ := s.GetProduct(ctx, chocolates.ID)
	assert.Equal(t, 8, g.Stock)
	assert.Equal(t, 4, c.Stock)
}

func TestPlaceOrderStockInsuficienteNoTocaNada(t *testing.T) {
	s := New()
	ctx := context.Background()

	gomitas := nuevoProducto(t, s, "Gomitas de Oso", 5.0, 10)
	caramelos := nuevoProducto(t, s, "Caramelos Ácidos", 3.5, 1)

	// La línea de caramelos excede el stock: ningún descuento debe ocurrir.
	carrito := map[string]int{gomitas.ID: 2, caramelos.ID: 3}
	_, err := s.PlaceOrder(ctx, carrito, store.Cliente{Nombre: "Ana"})

	var insuf *store.ErrStockInsuficiente
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, "Caramelos Ácidos", insuf.Producto)

	g, _ := s.GetProduct(ctx, gomitas.ID)
	c, _ := s.GetProduct(ctx, caramelos.ID)
	assert.Equal(t, 10, g.Stock)
	assert.Equal(t, 1, c.Stock)

	orders, _ := s.ListOrders(ctx)
	assert.Empty(t, orders)
}

func TestPlaceOrderIgnoraProductosBorrados(t *testing.T) {
	s := New()
	ctx := context.Background()

	gomitas := nuevoProducto(t, s, "Gomitas de Oso", 5.0, 10)
	borrado := nuevoProducto(t, s, "Descontinuado", 1.0, 3)
	require.NoError(t, s.DeleteProduct(ctx, borrado.ID))

	order, err := s.PlaceOrder(ctx, map[string]int{gomitas.ID: 1, borrado.ID: 2}, store.Cliente{Nombre: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, order.Total)
	assert.NotContains(t, order.Productos, "Descontinuado")
}

// Dos checkouts simultáneos por la última unidad: exactamente uno gana.
func TestPlaceOrderConcurrenteUltimaUnidad(t *testing.T) {
	s := New()
	ctx := context.Background()

	p := nuevoProducto(t, s, "Chocolates Premium", 12.0, 1)
	carrito := map[string]int{p.ID: 1}

	var wg sync.WaitGroup
	errores := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errores[i] = s.PlaceOrder(ctx, carrito, store.Cliente{Nombre: "Cliente"})
		}(i)
	}
	wg.Wait()

	exitos, rechazos := 0, 0
	for _, err := range errores {
		if err == nil {
			exitos++
			continue
		}
		var insuf *store.ErrStockInsuficiente
		require.ErrorAs(t, err, &insuf)
		rechazos++
	}
	assert.Equal(t, 1, exitos)
	assert.Equal(t, 1, rechazos)

	final, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, final.Stock)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := New()
	ctx := context.Background()

	p := nuevoProducto(t, s, "Gomitas de Oso", 5.0, 10)
	order, err := s.PlaceOrder(ctx, map[string]int{p.ID: 1}, store.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	// Estado fuera del conjunto permitido: rechazado sin cambios.
	err = s.UpdateOrderStatus(ctx, order.ID, "Perdido en tránsito")
	assert.ErrorIs(t, err, store.ErrEstadoInvalido)

	actual, _ := s.GetOrder(ctx, order.ID)
	assert.Equal(t, models.EstadoPendiente, actual.Status)

	require.NoError(t, s.UpdateOrderStatus(ctx, order.ID, models.EstadoEnviado))
	actual, _ = s.GetOrder(ctx, order.ID)
	assert.Equal(t, models.EstadoEnviado, actual.Status)

	err = s.UpdateOrderStatus(ctx, "no-existe", models.EstadoEnviado)
	assert.ErrorIs(t, err, store.ErrNoEncontrado)
}
