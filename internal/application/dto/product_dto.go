package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// El stock inicial no se acepta aquí: el stock solo entra vía movimientos.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	StockMinimo int             `json:"stock_minimo"`
	StockMaximo int             `json:"stock_maximo"`
	UnitMeasure string          `json:"unit_measure"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos opcionales.
// No permite tocar StockActual (se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	StockMinimo *int             `json:"stock_minimo,omitempty"`
	StockMaximo *int             `json:"stock_maximo,omitempty"`
	UnitMeasure *string          `json:"unit_measure,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	StockActual int             `json:"stock_actual"`
	StockMinimo int             `json:"stock_minimo"`
	StockMaximo int             `json:"stock_maximo"`
	UnitMeasure string          `json:"unit_measure"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
