package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su contador de stock.
// QuantityOnHand solo lo muta el motor de movimientos (internal/application/stock);
// el CRUD de productos nunca lo toca después de la creación.
type Product struct {
	ID             string
	Reference      string // código único generado (PRD-xxxxxxxxxx)
	Name           string
	Description    string
	Price          decimal.Decimal
	UnitID         string          // referencia a la unidad de medida
	QuantityOnHand decimal.Decimal // invariante: nunca negativo
	AlertThreshold decimal.Decimal // umbral para alertas de stock bajo
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral de alerta.
func (p *Product) IsLowStock() bool {
	return p.QuantityOnHand.LessThanOrEqual(p.AlertThreshold)
}
