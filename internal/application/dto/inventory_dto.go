package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity es positiva para IN/OUT; para ADJUSTMENT lleva el signo del ajuste.
type RegisterMovementRequest struct {
	ProductID    string `json:"product_id"`
	Type         string `json:"type"` // IN, OUT, ADJUSTMENT
	Quantity     int    `json:"quantity"`
	Reason       string `json:"reason"`
	ReferenceDoc string `json:"reference_doc,omitempty"`
}

// MovementResponse representación de un movimiento en respuestas.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	StockBefore  int       `json:"stock_before"`
	StockAfter   int       `json:"stock_after"`
	Reason       string    `json:"reason"`
	ReferenceDoc string    `json:"reference_doc,omitempty"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterMovementResponse incluye el movimiento creado y las señales de
// umbral. Las señales son advertencias, nunca bloquean el movimiento.
type RegisterMovementResponse struct {
	Movement     MovementResponse `json:"movement"`
	BelowMinimum bool             `json:"below_minimum"`
	AboveMaximum bool             `json:"above_maximum"`
}

// StockResponse stock actual de un producto.
type StockResponse struct {
	ProductID   string `json:"product_id"`
	StockActual int    `json:"stock_actual"`
}

// StockAuditResponse resultado de auditar el contador contra el libro.
type StockAuditResponse struct {
	ProductID   string `json:"product_id"`
	StockActual int    `json:"stock_actual"`
	LedgerSum   int    `json:"ledger_sum"`
	Consistent  bool   `json:"consistent"`
}

// MovementListResponse listado paginado de movimientos (kardex).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
