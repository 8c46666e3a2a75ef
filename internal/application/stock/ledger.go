package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
	"github.com/tu-usuario/facturacion-api/pkg/logger"
)

// LedgerUseCase es la única autoridad que muta QuantityOnHand. Aplica movimientos
// de forma transaccional con bloqueo de fila (SELECT FOR UPDATE): carga el stock
// actual, calcula el nuevo según el tipo, valida el invariante de no-negatividad
// y persiste contador + movimiento en la misma transacción.
//
// Invariante de conservación: reproducir los movimientos de un producto en orden
// de creación desde su cantidad inicial reproduce QuantityOnHand exactamente
// (QuantityAfter del movimiento n == QuantityBefore del n+1).
type LedgerUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewLedgerUseCase construye el motor de movimientos.
func NewLedgerUseCase(txRunner TxRunner, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, log: log.Module("stock")}
}

// MovementInput entrada para aplicar un movimiento.
// Quantity es delta para ENTREE/SORTIE y valor objetivo para AJUSTEMENT.
type MovementInput struct {
	ProductID string
	Type      string
	Quantity  decimal.Decimal
	Reason    string
	InvoiceID *string
}

// ApplyMovement valida y aplica un movimiento dentro de una transacción propia.
// Un movimiento rechazado no deja rastro: ni contador ni registro.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidMovementType
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var mov *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		m, err := uc.applyInTx(movRepo, productRepo, in, time.Now())
		if err != nil {
			return err
		}
		mov = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", mov.ProductID).
		Str("type", mov.Type).
		Str("before", mov.QuantityBefore.String()).
		Str("after", mov.QuantityAfter.String()).
		Msg("movimiento aplicado")
	return mov, nil
}

// ApplyExitInTx ejecuta una SORTIE con los repositorios del caller (misma
// transacción). Es el punto de entrada del puente facturación→stock: si una
// línea no tiene stock el error llega al caller, que decide el rollback de toda
// su transacción; el motor solo rechaza el movimiento que falla.
func (uc *LedgerUseCase) ApplyExitInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	productID string,
	quantity decimal.Decimal,
	reason, invoiceID string,
	now time.Time,
) (*entity.StockMovement, error) {
	if quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyInTx(movRepo, productRepo, MovementInput{
		ProductID: productID,
		Type:      entity.MovementTypeSortie,
		Quantity:  quantity,
		Reason:    reason,
		InvoiceID: &invoiceID,
	}, now)
}

// applyInTx es la función de transición compartida por el endpoint manual y el
// puente de facturación. Asume que la validación de entrada ya ocurrió y que
// los repos están atados a una transacción abierta.
func (uc *LedgerUseCase) applyInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	in MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	// Bloquea la fila del producto: serializa movimientos concurrentes sobre el mismo producto
	product, err := productRepo.GetForUpdate(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	before := product.QuantityOnHand
	var after decimal.Decimal
	switch in.Type {
	case entity.MovementTypeEntree:
		after = before.Add(in.Quantity)
	case entity.MovementTypeSortie:
		if in.Quantity.GreaterThan(before) {
			return nil, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   before,
				Requested:   in.Quantity,
			}
		}
		after = before.Sub(in.Quantity)
	case entity.MovementTypeAjustement:
		// Ajuste absoluto: fija el stock al valor indicado (conteo físico)
		after = in.Quantity
	default:
		return nil, domain.ErrInvalidMovementType
	}

	if err := productRepo.SetQuantity(product.ID, after); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		Type:           in.Type,
		Quantity:       in.Quantity,
		QuantityBefore: before,
		QuantityAfter:  after,
		Reason:         in.Reason,
		InvoiceID:      in.InvoiceID,
		CreatedAt:      now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}
