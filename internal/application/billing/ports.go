package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de stock y de facturación. CreateInvoice la usa para que cabecera,
// líneas y movimientos SORTIE confirmen o se reviertan juntos.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// StockEngine es el puente facturación→stock: una SORTIE por línea de factura,
// ejecutada con los repositorios del caller (misma transacción). Si devuelve
// error (ej. stock insuficiente) el caller debe abortar su transacción; el motor
// nunca compensa líneas ya aplicadas.
type StockEngine interface {
	ApplyExitInTx(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		productID string,
		quantity decimal.Decimal,
		reason, invoiceID string,
		now time.Time,
	) (*entity.StockMovement, error)
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, client *entity.Client, lines []InvoiceLineForPDF) ([]byte, error)
}

// InvoiceLineForPDF línea de factura enriquecida con el nombre del producto.
type InvoiceLineForPDF struct {
	entity.InvoiceLine
	ProductName string
}
