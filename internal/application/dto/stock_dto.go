package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/stocks/movements.
// Quantity es delta para ENTREE/SORTIE y valor absoluto para AJUSTEMENT.
type CreateMovementRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"` // ENTREE | SORTIE | AJUSTEMENT
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
}

// MovementResponse representación HTTP de un movimiento de stock.
type MovementResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	Reason         string          `json:"reason,omitempty"`
	InvoiceID      *string         `json:"invoice_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovementListQuery filtros para GET /api/stocks/movements.
type MovementListQuery struct {
	ProductID string `query:"product_id"`
	Type      string `query:"type"`
	PageQuery
}

// MovementListResponse página de movimientos, más recientes primero.
type MovementListResponse struct {
	Data []MovementResponse `json:"data"`
	PageMeta
}

// LowStockResponse producto en o bajo su umbral de alerta.
type LowStockResponse struct {
	ProductID      string          `json:"product_id"`
	Reference      string          `json:"reference"`
	Name           string          `json:"name"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}
