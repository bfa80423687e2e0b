package models

// CartItem es una línea del carrito ya resuelta contra el catálogo.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	Img       string  `json:"img"`
}
