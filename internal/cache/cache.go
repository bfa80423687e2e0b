package cache

import (
	"context"
	"encoding/json"
	"time"

	"vyv_dulceria/internal/database"
	"vyv_dulceria/internal/models"
)

const (
	claveListado = "productos:listado"
	ListadoTTL   = 10 * time.Minute
)

// ListadoProductos devuelve el listado cacheado, o nil si no hay caché
// disponible (Redis apagado o clave ausente).
func ListadoProductos(ctx context.Context) []models.Product {
	if database.Redis == nil {
		return nil
	}

	data, err := database.Redis.Get(ctx, claveListado).Result()
	if err != nil {
		return nil
	}

	var productos []models.Product
	if err := json.Unmarshal([]byte(data), &productos); err != nil {
		return nil
	}
	return productos
}

// GuardarListado cachea el listado completo. Mejor esfuerzo.
func GuardarListado(ctx context.Context, productos []models.Product) {
	if database.Redis == nil {
		return
	}
	if data, err := json.Marshal(productos); err == nil {
		database.Redis.Set(ctx, claveListado, data, ListadoTTL)
	}
}

// InvalidarListado borra la caché; se llama tras cada mutación de catálogo
// y tras cada checkout (el stock mostrado cambió).
func InvalidarListado(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, claveListado)
}
