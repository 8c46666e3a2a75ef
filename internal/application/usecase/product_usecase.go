package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
	"github.com/tu-usuario/facturacion-api/pkg/nanoid"
)

// Umbral de alerta por defecto cuando el producto no define uno.
var defaultAlertThreshold = decimal.NewFromInt(10)

// ProductUseCase casos de uso CRUD para productos. El stock solo se fija aquí
// como valor inicial en la creación; después lo gobierna el motor de movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	unitRepo repository.UnitRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, unitRepo repository.UnitRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, unitRepo: unitRepo}
}

// Create crea un producto con referencia generada (PRD-xxxxxxxxxx).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.UnitID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}

	initialStock := decimal.Zero
	if in.InitialStock != nil {
		if in.InitialStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		initialStock = *in.InitialStock
	}
	threshold := defaultAlertThreshold
	if in.AlertThreshold != nil {
		if in.AlertThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		threshold = *in.AlertThreshold
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Reference:      "PRD-" + nanoid.New(10),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		UnitID:         in.UnitID,
		QuantityOnHand: initialStock,
		AlertThreshold: threshold,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda, filtro de activos y filtro de stock bajo.
func (uc *ProductUseCase) List(q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	q.Normalize()
	filter := repository.ProductFilter{
		Search:   q.Search,
		Active:   q.Active,
		LowStock: q.LowStock,
	}
	list, total, err := uc.repo.List(filter, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		data = append(data, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data:     data,
		PageMeta: dto.NewPageMeta(total, q.Page, q.Limit),
	}, nil
}

// Update actualiza datos de catálogo. Nunca toca QuantityOnHand: eso es del motor de movimientos.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrNotFound
		}
		product.UnitID = *in.UnitID
	}
	if in.AlertThreshold != nil {
		if in.AlertThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.AlertThreshold = *in.AlertThreshold
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Reference:      p.Reference,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		UnitID:         p.UnitID,
		QuantityOnHand: p.QuantityOnHand,
		AlertThreshold: p.AlertThreshold,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
