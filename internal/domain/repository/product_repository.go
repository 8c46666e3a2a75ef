package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
)

// ProductFilter criterios de listado de productos.
type ProductFilter struct {
	Search   string // busca en nombre, referencia y descripción
	Active   *bool
	LowStock bool // solo productos con quantity_on_hand <= alert_threshold
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y SetQuantity son el único punto de mutación del contador de
// stock y se usan exclusivamente dentro de transacciones del motor de movimientos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByReference(reference string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	Delete(id string) error

	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y la devuelve.
	GetForUpdate(id string) (*entity.Product, error)
	// SetQuantity fija quantity_on_hand; solo el motor de movimientos lo invoca.
	SetQuantity(id string, quantity decimal.Decimal) error
	// ListLowStock devuelve productos activos con stock en o bajo el umbral de alerta.
	ListLowStock() ([]*entity.Product, error)
}
