package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vyv_dulceria/internal/models"
	"vyv_dulceria/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	price      DOUBLE PRECISION NOT NULL DEFAULT 0,
	stock      INTEGER NOT NULL DEFAULT 0,
	img        TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id         TEXT PRIMARY KEY,
	cliente    TEXT NOT NULL,
	direccion  TEXT NOT NULL,
	telefono   TEXT NOT NULL,
	correo     TEXT NOT NULL,
	productos  TEXT NOT NULL,
	total      DOUBLE PRECISION NOT NULL DEFAULT 0,
	status     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type Store struct {
	pool *pgxpool.Pool
}

// New conecta al Postgres de DATABASE_URL, crea el esquema si falta y
// siembra el catálogo inicial en la primera ejecución.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("conexión Postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping Postgres: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := s.seed(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("✅ Conectado a Postgres")
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creación de esquema: %w", err)
	}
	return nil
}

// seed carga el catálogo original de la dulcería si la tabla está vacía.
func (s *Store) seed(ctx context.Context) error {
	var existentes int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&existentes); err != nil {
		return err
	}
	if existentes > 0 {
		return nil
	}

	iniciales := []models.Product{
		{Name: "Gomitas de Oso", Price: 5.0, Stock: 10, Img: "https://cdn-icons-png.flaticon.com/512/819/819058.png"},
		{Name: "Chocolates Premium", Price: 12.0, Stock: 5, Img: "https://cdn-icons-png.flaticon.com/512/2619/2619554.png"},
		{Name: "Caramelos Ácidos", Price: 3.5, Stock: 20, Img: "https://cdn-icons-png.flaticon.com/512/1043/1043440.png"},
	}
	for _, p := range iniciales {
		p.ID = uuid.NewString()
		if err := s.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed de productos: %w", err)
		}
	}
	log.Println("🌱 Catálogo inicial sembrado")
	return nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, price, stock, img, created_at, updated_at FROM products ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Img, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, price, stock, img, created_at, updated_at FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Img, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, store.ErrNoEncontrado
	}
	return p, err
}

func (s *Store) GetProductsByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	result := make(map[string]models.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, name, price, stock, img, created_at, updated_at FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Img, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result[p.ID] = p
	}
	return result, rows.Err()
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) error {
	now := time.Now()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (id, name, price, stock, img, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		p.ID, p.Name, p.Price, p.Stock, p.Img, now)
	return err
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE products SET name = $2, price = $3, stock = $4, img = $5, updated_at = now() WHERE id = $1`,
		p.ID, p.Name, p.Price, p.Stock, p.Img)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNoEncontrado
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNoEncontrado
	}
	return nil
}

// AdjustStock aplica el delta bajo bloqueo de fila para que dos ajustes
// simultáneos no se pisen entre sí.
func (s *Store) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var stock int
	err = tx.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1 FOR UPDATE`, id).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, store.ErrNoEncontrado
	}
	if err != nil {
		return 0, err
	}

	nuevo := stock + delta
	if nuevo < 0 {
		return 0, store.ErrStockNegativo
	}

	if _, err := tx.Exec(ctx, `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, id, nuevo); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return nuevo, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, cliente, direccion, telefono, correo, productos, total, status, created_at
		 FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Cliente, &o.Direccion, &o.Telefono, &o.Correo, &o.Productos, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := s.pool.QueryRow(ctx,
		`SELECT id, cliente, direccion, telefono, correo, productos, total, status, created_at FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.Cliente, &o.Direccion, &o.Telefono, &o.Correo, &o.Productos, &o.Total, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, store.ErrNoEncontrado
	}
	return o, err
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if !models.EstadoValido(status) {
		return store.ErrEstadoInvalido
	}
	tag, err := s.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNoEncontrado
	}
	return nil
}

// PlaceOrder ejecuta el checkout en una sola transacción: bloquea cada
// producto con SELECT ... FOR UPDATE, revalida stock, descuenta y registra
// el pedido. Dos checkouts sobre el mismo producto se serializan en el lock.
func (s *Store) PlaceOrder(ctx context.Context, carrito map[string]int, cliente store.Cliente) (models.Order, error) {
	if len(carrito) == 0 {
		return models.Order{}, store.ErrCarritoVacio
	}

	// Orden estable de los ids: evita interbloqueos entre transacciones que
	// bloquean los mismos productos en distinto orden.
	ids := make([]string, 0, len(carrito))
	for id := range carrito {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var total float64
	var resumen []string

	for _, id := range ids {
		qty := carrito[id]
		if qty < 1 {
			continue
		}

		var name string
		var price float64
		var stock int
		err := tx.QueryRow(ctx, `SELECT name, price, stock FROM products WHERE id = $1 FOR UPDATE`, id).
			Scan(&name, &price, &stock)
		if errors.Is(err, pgx.ErrNoRows) {
			// Producto borrado después de entrar al carrito: se ignora la línea.
			continue
		}
		if err != nil {
			return models.Order{}, err
		}

		if qty > stock {
			return models.Order{}, &store.ErrStockInsuficiente{Producto: name}
		}

		if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1`, id, qty); err != nil {
			return models.Order{}, err
		}

		total += price * float64(qty)
		resumen = append(resumen, fmt.Sprintf("%s (x%d)", name, qty))
	}

	if len(resumen) == 0 {
		return models.Order{}, store.ErrCarritoVacio
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

	if _, err := tx.Exec(ctx,
		`INSERT INTO orders (id, cliente, direccion, telefono, correo, productos, total, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID, order.Cliente, order.Direccion, order.Telefono, order.Correo,
		order.Productos, order.Total, order.Status, order.CreatedAt); err != nil {
		return models.Order{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}
