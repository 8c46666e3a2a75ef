package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
	"github.com/tu-usuario/facturacion-api/pkg/logger"
	"github.com/tu-usuario/facturacion-api/pkg/nanoid"
)

// CreateInvoiceUseCase crea una factura y descuenta el stock en una sola
// transacción: cabecera + líneas + un movimiento SORTIE por línea. Si cualquier
// línea no tiene stock, toda la factura se revierte (decisión de esta capa, no
// del motor de stock, que solo rechaza el movimiento que falla).
type CreateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	stockEngine StockEngine
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	stockEngine StockEngine,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		stockEngine: stockEngine,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		log:         log.Module("billing"),
	}
}

// CreateInvoice valida cliente y líneas, genera el número, y persiste factura y
// salidas de stock atómicamente. Devuelve la factura creada con sus líneas.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.IssueDate.IsZero() || in.DueDate.IsZero() || in.DueDate.Before(in.IssueDate) {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	// Validación de líneas fuera de la transacción (solo lectura).
	// La verificación de stock ocurre dentro, con la fila bloqueada.
	for _, line := range in.Lines {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		Number:    nanoid.Numeric(10),
		ClientID:  in.ClientID,
		IssueDate: in.IssueDate,
		DueDate:   in.DueDate,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	total := decimal.Zero
	for _, l := range in.Lines {
		lineTotal := l.UnitPrice.Mul(l.Quantity).Round(2)
		inv.Lines = append(inv.Lines, entity.InvoiceLine{
			ID:        uuid.New().String(),
			InvoiceID: inv.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}
	inv.Total = total.Round(2)

	err = uc.txRunner.RunBilling(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i := range inv.Lines {
			if err := invoiceRepo.CreateLine(&inv.Lines[i]); err != nil {
				return err
			}
		}
		// Una SORTIE por línea; cualquier error revierte factura y movimientos
		reason := fmt.Sprintf("Factura %s", inv.Number)
		for _, line := range inv.Lines {
			if _, err := uc.stockEngine.ApplyExitInTx(
				movRepo, productRepo,
				line.ProductID, line.Quantity,
				reason, inv.ID, now,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("number", inv.Number).
		Int("lines", len(inv.Lines)).
		Str("total", inv.Total.String()).
		Msg("factura creada")
	return toInvoiceResponse(inv, inv.Lines), nil
}
