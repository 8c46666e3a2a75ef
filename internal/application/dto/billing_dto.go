package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceLineRequest línea de una factura a crear.
type CreateInvoiceLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID  string                     `json:"client_id"`
	IssueDate time.Time                  `json:"issue_date"`
	DueDate   time.Time                  `json:"due_date"`
	Lines     []CreateInvoiceLineRequest `json:"lines"`
	Notes     string                     `json:"notes,omitempty"`
}

// InvoiceLineResponse línea de factura en respuestas.
type InvoiceLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// InvoiceResponse representación HTTP de una factura.
type InvoiceResponse struct {
	ID        string                `json:"id"`
	Number    string                `json:"number"`
	ClientID  string                `json:"client_id"`
	IssueDate time.Time             `json:"issue_date"`
	DueDate   time.Time             `json:"due_date"`
	Lines     []InvoiceLineResponse `json:"lines,omitempty"`
	Total     decimal.Decimal       `json:"total"`
	Notes     string                `json:"notes,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// InvoiceListQuery filtros para GET /api/invoices.
type InvoiceListQuery struct {
	Search   string `query:"search"`
	ClientID string `query:"client_id"`
	From     string `query:"from"` // fecha de emisión, RFC 3339 o YYYY-MM-DD
	To       string `query:"to"`
	PageQuery
}

// InvoiceListResponse página de facturas (sin líneas).
type InvoiceListResponse struct {
	Data []InvoiceResponse `json:"data"`
	PageMeta
}
