package repository

import "github.com/tu-usuario/facturacion-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para unidades de medida.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	List() ([]*entity.Unit, error)
	Delete(id string) error
}
