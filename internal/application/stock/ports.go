package stock

import (
	"context"

	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del contador de
// stock y el alta del movimiento se observen como una sola unidad: o ambas
// escrituras confirman, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
