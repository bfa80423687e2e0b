package cart

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vyv_dulceria/internal/models"
)

var gomitas = models.Product{ID: "p1", Name: "Gomitas de Oso", Price: 5.0, Stock: 5}

func TestAgregarFusionaCantidades(t *testing.T) {
	carrito := map[string]int{}

	require.NoError(t, Agregar(carrito, gomitas, 3))
	assert.Equal(t, 3, carrito["p1"])

	// 3 + 3 = 6 > stock 5: rechazado y la cantidad previa se conserva.
	err := Agregar(carrito, gomitas, 3)
	assert.ErrorIs(t, err, ErrStockInsuficiente)
	assert.Equal(t, 3, carrito["p1"])

	// 3 + 2 = 5 cabe exacto.
	require.NoError(t, Agregar(carrito, gomitas, 2))
	assert.Equal(t, 5, carrito["p1"])
}

func TestAgregarCantidadInvalida(t *testing.T) {
	carrito := map[string]int{}
	assert.ErrorIs(t, Agregar(carrito, gomitas, 0), ErrCantidadInvalida)
	assert.ErrorIs(t, Agregar(carrito, gomitas, -2), ErrCantidadInvalida)
	assert.Empty(t, carrito)
}

func TestQuitar(t *testing.T) {
	carrito := map[string]int{"p1": 2, "p2": 1}

	Quitar(carrito, "p1")
	assert.NotContains(t, carrito, "p1")

	// Repetir la misma llamada no cambia nada.
	Quitar(carrito, "p1")
	assert.Equal(t, map[string]int{"p2": 1}, carrito)
}

func TestQuitarUno(t *testing.T) {
	carrito := map[string]int{"p1": 2}

	QuitarUno(carrito, "p1")
	assert.Equal(t, 1, carrito["p1"])

	// Al llegar a cero la línea desaparece.
	QuitarUno(carrito, "p1")
	assert.NotContains(t, carrito, "p1")

	QuitarUno(carrito, "p1") // inocuo sobre línea ausente
	assert.Empty(t, carrito)
}

func TestResolverCalculaSubtotalesYDescartaBorrados(t *testing.T) {
	carrito := map[string]int{
		"p1":      2,
		"p2":      1,
		"borrado": 4, // ya no existe en el catálogo
	}
	catalogo := map[string]models.Product{
		"p1": {ID: "p1", Name: "Gomitas de Oso", Price: 5.0, Stock: 10},
		"p2": {ID: "p2", Name: "Chocolates Premium", Price: 12.0, Stock: 5},
	}

	items, total := Resolver(carrito, catalogo)
	require.Len(t, items, 2)
	assert.Equal(t, 22.0, total)

	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	assert.Equal(t, 10.0, items[0].Subtotal)
	assert.Equal(t, 12.0, items[1].Subtotal)
}

func TestResolverCarritoVacio(t *testing.T) {
	items, total := Resolver(map[string]int{}, map[string]models.Product{})
	assert.Empty(t, items)
	assert.Zero(t, total)
}
