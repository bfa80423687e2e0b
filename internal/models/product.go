package models

import "time"

type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Stock     int       `json:"stock" db:"stock"`
	Img       string    `json:"img" db:"img"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ImagenPorDefecto se usa cuando el admin no proporciona imagen al crear.
const ImagenPorDefecto = "https://cdn-icons-png.flaticon.com/512/3081/3081559.png"
