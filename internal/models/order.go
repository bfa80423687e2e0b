package models

import "time"

type Order struct {
	ID        string    `json:"id" db:"id"`
	Cliente   string    `json:"cliente" db:"cliente"`
	Direccion string    `json:"direccion" db:"direccion"`
	Telefono  string    `json:"telefono" db:"telefono"`
	Correo    string    `json:"correo" db:"correo"`
	Productos string    `json:"productos" db:"productos"` // resumen legible, ej. "Gomitas de Oso (x2), ..."
	Total     float64   `json:"total" db:"total"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Estados posibles de un pedido. Cualquier otro valor se rechaza.
const (
	EstadoPendiente   = "Pendiente de Envío"
	EstadoPreparacion = "En preparación"
	EstadoEnviado     = "Enviado"
	EstadoEntregado   = "Entregado"
	EstadoCancelado   = "Cancelado"
)

var EstadosPedido = []string{
	EstadoPendiente,
	EstadoPreparacion,
	EstadoEnviado,
	EstadoEntregado,
	EstadoCancelado,
}

// EstadoValido indica si un estado pertenece al conjunto permitido.
func EstadoValido(estado string) bool {
	for _, e := range EstadosPedido {
		if e == estado {
			return true
		}
	}
	return false
}
