package dto

import "time"

// RegisterMovementRequest entrada para registrar una entrada o salida de stock.
type RegisterMovementRequest struct {
	ProductID  int64      `json:"product_id"`
	Type       string     `json:"type"` // entrada | saida
	Quantity   int        `json:"quantity"`
	Reason     string     `json:"reason"`
	HappenedAt *time.Time `json:"happened_at"`
}

// MovementFilter parámetros de GET /api/stock-movements.
type MovementFilter struct {
	Search string `query:"search"` // nombre del producto
	Type   string `query:"type"`   // entrada | saida; vacío = ambos
	PageRequest
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Type           string    `json:"type"`
	Quantity       int       `json:"quantity"`
	SignedQuantity int       `json:"signed_quantity"` // +entrada / -saida
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos, del más reciente al más antiguo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
