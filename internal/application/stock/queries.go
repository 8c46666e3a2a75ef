package stock

import (
	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre el libro de movimientos y las
// alertas de stock bajo. No muta estado.
type QueryUseCase struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewQueryUseCase construye las consultas de stock.
func NewQueryUseCase(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, productRepo: productRepo}
}

// ListMovements devuelve una página del historial, más recientes primero.
// La paginación es estable solo frente a datos quietos: registros insertados
// durante el paginado pueden desplazar resultados (aceptable para una vista de auditoría).
func (uc *QueryUseCase) ListMovements(q dto.MovementListQuery) (*dto.MovementListResponse, error) {
	if q.Type != "" && !entity.ValidMovementType(q.Type) {
		return nil, domain.ErrInvalidMovementType
	}
	q.Normalize()
	filter := repository.MovementFilter{ProductID: q.ProductID, Type: q.Type}
	list, total, err := uc.movRepo.List(filter, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		data = append(data, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Data:     data,
		PageMeta: dto.NewPageMeta(total, q.Page, q.Limit),
	}, nil
}

// GetMovement devuelve un movimiento por ID.
func (uc *QueryUseCase) GetMovement(id string) (*dto.MovementResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := toMovementResponse(m)
	return &out, nil
}

// ListByProduct devuelve el historial completo de un producto, más recientes primero.
func (uc *QueryUseCase) ListByProduct(productID string) ([]dto.MovementResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		data = append(data, toMovementResponse(m))
	}
	return data, nil
}

// ListLowStock devuelve los productos activos con stock en o bajo su umbral de alerta.
func (uc *QueryUseCase) ListLowStock() ([]dto.LowStockResponse, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockResponse{
			ProductID:      p.ID,
			Reference:      p.Reference,
			Name:           p.Name,
			QuantityOnHand: p.QuantityOnHand,
			AlertThreshold: p.AlertThreshold,
		})
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		Type:           m.Type,
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		Reason:         m.Reason,
		InvoiceID:      m.InvoiceID,
		CreatedAt:      m.CreatedAt,
	}
}
