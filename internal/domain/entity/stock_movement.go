package entity

import "time"

// MovementType dirección de un movimiento de stock.
type MovementType string

// Tipos de movimiento de stock.
const (
	MovementEntrada MovementType = "entrada" // entrada, suma al stock
	MovementSaida   MovementType = "saida"   // salida, resta del stock
)

// Valid indica si el tipo es uno de los conocidos.
func (t MovementType) Valid() bool {
	return t == MovementEntrada || t == MovementSaida
}

// StockMovement representa un movimiento de stock. Quantity siempre es positiva;
// el signo lo determina Type.
type StockMovement struct {
	ID          int64
	ProductID   int64
	ProductName string
	Type        MovementType
	Quantity    int
	Reason      string
	CreatedAt   time.Time
}

// SignedQuantity devuelve +Quantity para entradas y -Quantity para salidas.
func (m StockMovement) SignedQuantity() int {
	if m.Type == MovementSaida {
		return -m.Quantity
	}
	return m.Quantity
}
