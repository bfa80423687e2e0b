package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"

	"vyv_dulceria/internal/store"
	"vyv_dulceria/internal/store/memory"
	"vyv_dulceria/internal/store/postgres"
)

// --- Conexiones globales ---
// Store siempre queda inicializado; Redis y Elastic son opcionales y valen
// nil cuando no están configurados.
var (
	Store   store.Store
	Redis   *redis.Client
	Elastic *elasticsearch.Client
)

func ConnectAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectStore(ctx)
	connectRedis(ctx)
	connectElastic()
}

// connectStore usa Postgres si hay DATABASE_URL; si no, cae al almacén en
// memoria con el catálogo sembrado (solo para desarrollo).
func connectStore(ctx context.Context) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Println("⚠️  Sin DATABASE_URL - almacén en memoria (los datos se pierden al reiniciar)")
		Store = memory.NewSeeded()
		return
	}

	s, err := postgres.New(ctx, databaseURL)
	if err != nil {
		log.Fatalf("❌ Error conexión Postgres: %v", err)
	}
	Store = s
}

func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️  Sin REDIS_HOST - caché y límite de intentos desactivados")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️  Redis no responde, se continúa sin caché:", err)
		return
	}

	Redis = client
	log.Println("✅ Conectado a Redis")
}

func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️  Sin ELASTIC_URL - búsqueda solo contra la base de datos")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Println("⚠️  Error creando cliente Elasticsearch:", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Println("⚠️  Elasticsearch no responde, se continúa sin índice:", err)
		return
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Conectado a Elasticsearch")
}

// CloseAll cierra las conexiones abiertas.
func CloseAll() {
	if Store != nil {
		Store.Close()
	}
	if Redis != nil {
		_ = Redis.Close()
	}
}
