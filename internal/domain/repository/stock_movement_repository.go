package repository

import "github.com/tu-usuario/facturacion-api/internal/domain/entity"

// MovementFilter criterios de listado del historial de movimientos.
type MovementFilter struct {
	ProductID string
	Type      string
}

// StockMovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existe Update ni Delete por diseño.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve una página de movimientos (más recientes primero) y el total que cumple el filtro.
	List(filter MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error)
	// ListByProduct devuelve el historial completo de un producto, más recientes primero.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
