package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"vyv_dulceria/internal/database"
	"vyv_dulceria/internal/models"
)

const indiceProductos = "productos"

//
// --- INDEXACIÓN EN ELASTICSEARCH ---
//

// IndexarProducto indexa o reindexa un producto. Mejor esfuerzo: el catálogo
// en la base de datos es la fuente de verdad.
func IndexarProducto(p models.Product) {
	if database.Elastic == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      indiceProductos,
		DocumentID: p.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Error enviando a Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic devolvió error para %s: %s", p.Name, res.String())
	}
}

// DesindexarProducto elimina el documento al borrar el producto.
func DesindexarProducto(productID string) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{
		Index:      indiceProductos,
		DocumentID: productID,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Error borrando de Elastic:", err)
		return
	}
	defer res.Body.Close()
}

//
// --- BÚSQUEDA ---
//

// BuscarProductos consulta el índice por nombre. Devuelve error si Elastic
// no está disponible para que el caller caiga a la base de datos.
func BuscarProductos(consulta string) ([]models.Product, error) {
	if database.Elastic == nil {
		return nil, errors.New("cliente Elasticsearch no inicializado")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"name": map[string]interface{}{
					"query":     consulta,
					"fuzziness": "AUTO",
				},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("error codificando consulta: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{indiceProductos},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("error consultando Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("índice no encontrado o vacío")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("error decodificando respuesta: %v", err)
	}

	productos := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		productos = append(productos, hit.Source)
	}
	return productos, nil
}

// FiltrarPorNombre es el respaldo cuando no hay Elastic: filtro en memoria
// sobre el listado de la base de datos.
func FiltrarPorNombre(productos []models.Product, consulta string) []models.Product {
	var resultado []models.Product
	for _, p := range productos {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(consulta)) {
			resultado = append(resultado, p)
		}
	}
	return resultado
}
