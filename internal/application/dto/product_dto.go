package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// InitialStock y AlertThreshold son opcionales; la referencia se genera.
type CreateProductRequest struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	UnitID         string           `json:"unit_id"`
	InitialStock   *decimal.Decimal `json:"initial_stock,omitempty"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
// El stock no se actualiza por aquí: solo vía movimientos.
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	UnitID         *string          `json:"unit_id,omitempty"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold,omitempty"`
	Active         *bool            `json:"active,omitempty"`
}

// ProductListQuery filtros para GET /api/products.
type ProductListQuery struct {
	Search   string `query:"search"`
	Active   *bool  `query:"active"`
	LowStock bool   `query:"low_stock"`
	PageQuery
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Reference      string          `json:"reference"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	UnitID         string          `json:"unit_id"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
	PageMeta
}
