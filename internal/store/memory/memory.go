package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vyv_dulceria/internal/models"
	"vyv_dulceria/internal/store"
)

// Store guarda catálogo y pedidos en memoria. Un solo mutex serializa todas
// las operaciones, así que PlaceOrder es atómico igual que la transacción de
// Postgres. Se usa en desarrollo (sin DATABASE_URL) y en las pruebas.
type Store struct {
	mu       sync.Mutex
	products map[string]models.Product
	orders   map[string]models.Order
	orden    []string // ids de productos en orden de creación
}

func New() *Store {
	return &Store{
		products: make(map[string]models.Product),
		orders:   make(map[string]models.Order),
	}
}

// NewSeeded arranca con el catálogo original de la dulcería.
func NewSeeded() *Store {
	s := New()
	iniciales := []models.Product{
		{Name: "Gomitas de Oso", Price: 5.0, Stock: 10, Img: "https://cdn-icons-png.flaticon.com/512/819/819058.png"},
		{Name: "Chocolates Premium", Price: 12.0, Stock: 5, Img: "https://cdn-icons-png.flaticon.com/512/2619/2619554.png"},
		{Name: "Caramelos Ácidos", Price: 3.5, Stock: 20, Img: "https://cdn-icons-png.flaticon.com/512/1043/1043440.png"},
	}
	for _, p := range iniciales {
		p.ID = uuid.NewString()
		_ = s.CreateProduct(context.Background(), p)
	}
	return s
}

func (s *Store) ListProducts(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, 0, len(s.orden))
	for _, id := range s.orden {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *Store) GetProduct(_ context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, store.ErrNoEncontrado
	}
	return p, nil
}

func (s *Store) GetProductsByIDs(_ context.Context, ids []string) (map[string]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]models.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func (s *Store) CreateProduct(_ context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products[p.ID] = p
	s.orden = append(s.orden, p.ID)
	return nil
}

func (s *Store) UpdateProduct(_ context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actual, ok := s.products[p.ID]
	if !ok {
		return store.ErrNoEncontrado
	}
	p.CreatedAt = actual.CreatedAt
	p.UpdatedAt = time.Now()
	s.products[p.ID] = p
	return nil
}

func (s *Store) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return store.ErrNoEncontrado
	}
	delete(s.products, id)
	return nil
}

func (s *Store) AdjustStock(_ context.Context, id string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return 0, store.ErrNoEncontrado
	}
	nuevo := p.Stock + delta
	if nuevo < 0 {
		return 0, store.ErrStockNegativo
	}
	p.Stock = nuevo
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return nuevo, nil
}

func (s *Store) ListOrders(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *Store) GetOrder(_ context.Context, id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, store.ErrNoEncontrado
	}
	return o, nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, id, status string) error {
	if !models.EstadoValido(status) {
		return store.ErrEstadoInvalido
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return store.ErrNoEncontrado
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

func (s *Store) PlaceOrder(_ context.Context, carrito map[string]int, cliente store.Cliente) (models.Order, error) {
	if len(carrito) == 0 {
		return models.Order{}, store.ErrCarritoVacio
	}

	ids := make([]string, 0, len(carrito))
	for id := range carrito {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Primera pasada: revalidar todas las líneas antes de tocar stock.
	var total float64
	var resumen []string
	for _, id := range ids {
		qty := carrito[id]
		if qty < 1 {
			continue
		}
		p, ok := s.products[id]
		if !ok {
			continue // borrado después de entrar al carrito
		}
		if qty > p.Stock {
			return models.Order{}, &store.ErrStockInsuficiente{Producto: p.Name}
		}
		total += p.Price * float64(qty)
		resumen = append(resumen, fmt.Sprintf("%s (x%d)", p.Name, qty))
	}

	if len(resumen) == 0 {
		return models.Order{}, store.ErrCarritoVacio
	}

	// Segunda pasada: descontar. Ya no puede fallar bajo el mismo lock.
	for _, id := range ids {
		qty := carrito[id]
		if qty < 1 {
			continue
		}
		if p, ok := s.products[id]; ok {
			p.Stock -= qty
			p.UpdatedAt = time.Now()
			s.products[id] = p
		}
	}

	order := models.Order{
		ID:        uuid.NewString(),
		Cliente:   cliente.Nombre,
		Direccion: cliente.Direccion,
		Telefono:  cliente.Telefono,
		Correo:    cliente.Correo,
		Productos: strings.Join(resumen, ", "),
		Total:     total,
		Status:    models.EstadoPendiente,
		CreatedAt: time.Now(),
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() {}
