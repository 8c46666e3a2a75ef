package billing

import (
	"time"

	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
)

// InvoiceQueryUseCase consultas y borrado de facturas.
// Borrar una factura no restituye stock: el historial de movimientos es
// append-only y las correcciones se hacen con AJUSTEMENT.
type InvoiceQueryUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{invoiceRepo: invoiceRepo}
}

// List devuelve una página de facturas (sin líneas), más recientes primero.
func (uc *InvoiceQueryUseCase) List(q dto.InvoiceListQuery) (*dto.InvoiceListResponse, error) {
	q.Normalize()
	filter := repository.InvoiceFilter{
		Search:   q.Search,
		ClientID: q.ClientID,
	}
	if q.From != "" {
		t, err := parseDate(q.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &t
	}
	if q.To != "" {
		t, err := parseDate(q.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = &t
	}
	list, total, err := uc.invoiceRepo.List(filter, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		data = append(data, *toInvoiceResponse(inv, nil))
	}
	return &dto.InvoiceListResponse{
		Data:     data,
		PageMeta: dto.NewPageMeta(total, q.Page, q.Limit),
	}, nil
}

// GetByID devuelve la factura con sus líneas.
func (uc *InvoiceQueryUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	flat := make([]entity.InvoiceLine, 0, len(lines))
	for _, l := range lines {
		flat = append(flat, *l)
	}
	return toInvoiceResponse(inv, flat), nil
}

// ListByClient devuelve las facturas de un cliente, más recientes primero.
func (uc *InvoiceQueryUseCase) ListByClient(clientID string) ([]dto.InvoiceResponse, error) {
	if clientID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.invoiceRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		data = append(data, *toInvoiceResponse(inv, nil))
	}
	return data, nil
}

// Delete elimina la factura y sus líneas. Los movimientos que generó permanecen.
func (uc *InvoiceQueryUseCase) Delete(id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// parseDate acepta RFC 3339 o fecha simple YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toInvoiceResponse(inv *entity.Invoice, lines []entity.InvoiceLine) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:        inv.ID,
		Number:    inv.Number,
		ClientID:  inv.ClientID,
		IssueDate: inv.IssueDate,
		DueDate:   inv.DueDate,
		Total:     inv.Total,
		Notes:     inv.Notes,
		CreatedAt: inv.CreatedAt,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.InvoiceLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
		})
	}
	return out
}
