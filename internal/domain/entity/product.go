package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo comercial.
// StockActual solo se modifica vía movimientos de inventario; nunca directamente.
// Invariante: StockActual >= 0 y StockMinimo <= StockMaximo.
type Product struct {
	ID          string
	SKU         string // código único, asignado por el negocio
	Name        string
	Category    string
	Price       decimal.Decimal // precio de venta, no negativo
	StockActual int
	StockMinimo int
	StockMaximo int
	UnitMeasure string // unidad, caja, kg, etc.
	Active      bool   // baja lógica; las filas nunca se borran
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinimum indica si el stock actual está por debajo del umbral mínimo.
func (p *Product) BelowMinimum() bool { return p.StockActual < p.StockMinimo }

// AboveMaximum indica si el stock actual supera el umbral máximo.
func (p *Product) AboveMaximum() bool { return p.StockMaximo > 0 && p.StockActual > p.StockMaximo }
