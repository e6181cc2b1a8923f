package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste con signo
)

// ValidMovementType verifica que el tipo sea uno de los conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT || t == MovementTypeADJUSTMENT
}

// Movement es el registro inmutable de un cambio de stock sobre un producto.
// Se crea exactamente una vez y nunca se modifica ni se borra: es la pista de
// auditoría de cómo se llegó al stock actual.
// Invariante: StockAfter = StockBefore + Quantity, con Quantity positivo en
// entradas, negativo en salidas y con signo libre en ajustes. El StockBefore
// de un movimiento siempre coincide con el StockAfter del movimiento anterior
// del mismo producto.
type Movement struct {
	ID           string
	ProductID    string
	Type         string // IN, OUT, ADJUSTMENT
	Quantity     int    // delta con signo aplicado al stock
	StockBefore  int
	StockAfter   int
	Reason       string
	ReferenceDoc string // factura, orden, remisión; opcional
	CreatedBy    string // usuario responsable (auditoría)
	CreatedAt    time.Time
}
