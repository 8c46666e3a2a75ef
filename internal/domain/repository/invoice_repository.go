package repository

import (
	"time"

	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
)

// InvoiceFilter criterios de listado de facturas.
type InvoiceFilter struct {
	Search   string // coincide contra el número de factura
	ClientID string
	From     *time.Time // rango sobre la fecha de emisión
	To       *time.Time
}

// InvoiceRepository define el puerto de persistencia para facturas y sus líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
	GetByID(id string) (*entity.Invoice, error)
	GetLines(invoiceID string) ([]*entity.InvoiceLine, error)
	List(filter InvoiceFilter, limit, offset int) ([]*entity.Invoice, int, error)
	ListByClient(clientID string) ([]*entity.Invoice, error)
	Delete(id string) error
}
