package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create crea una unidad de medida.
func (uc *UnitUseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.Name == "" || in.Count <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	unit := &entity.Unit{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Count:       in.Count,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad por ID.
func (uc *UnitUseCase) GetByID(id string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(unit), nil
}

// List devuelve todas las unidades (catálogo pequeño, sin paginación).
func (uc *UnitUseCase) List() ([]dto.UnitResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	data := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		data = append(data, *toUnitResponse(u))
	}
	return data, nil
}

// Update actualiza una unidad. Campos nil no se tocan.
func (uc *UnitUseCase) Update(id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		unit.Name = *in.Name
	}
	if in.Description != nil {
		unit.Description = *in.Description
	}
	if in.Count != nil {
		if *in.Count <= 0 {
			return nil, domain.ErrInvalidInput
		}
		unit.Count = *in.Count
	}
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Delete elimina una unidad por ID.
func (uc *UnitUseCase) Delete(id string) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		Count:       u.Count,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
