package stock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-api/internal/application/stock"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/internal/domain/repository"
	"github.com/tu-usuario/facturacion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore simula la base de datos: productos + libro de movimientos.
type memStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

// memTxRunner serializa las "transacciones" con un mutex (equivalente en
// memoria al bloqueo de fila) y revierte el estado si fn falla.
type memTxRunner struct {
	mu    sync.Mutex
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.snapshot()
	err := fn(&memMovementRepo{store: r.store}, &memProductRepo{store: r.store})
	if err != nil {
		r.restore(snapshot)
		return err
	}
	return nil
}

func (r *memTxRunner) snapshot() *memStore {
	products := make(map[string]*entity.Product, len(r.store.products))
	for id, p := range r.store.products {
		cp := *p
		products[id] = &cp
	}
	movements := make([]*entity.StockMovement, len(r.store.movements))
	copy(movements, r.store.movements)
	return &memStore{products: products, movements: movements}
}

func (r *memTxRunner) restore(s *memStore) {
	r.store.products = s.products
	r.store.movements = s.movements
}

type memProductRepo struct{ store *memStore }

func (m *memProductRepo) Create(p *entity.Product) error { m.store.products[p.ID] = p; return nil }
func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return m.store.products[id], nil
}
func (m *memProductRepo) GetByReference(string) (*entity.Product, error) { return nil, nil }
func (m *memProductRepo) Update(p *entity.Product) error                 { m.store.products[p.ID] = p; return nil }
func (m *memProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (m *memProductRepo) Delete(id string) error { delete(m.store.products, id); return nil }
func (m *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return m.store.products[id], nil
}
func (m *memProductRepo) SetQuantity(id string, q decimal.Decimal) error {
	p, ok := m.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.QuantityOnHand = q
	return nil
}
func (m *memProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.store.products {
		if p.Active && p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

type memMovementRepo struct{ store *memStore }

func (m *memMovementRepo) Create(mov *entity.StockMovement) error {
	m.store.movements = append(m.store.movements, mov)
	return nil
}
func (m *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, mov := range m.store.movements {
		if mov.ID == id {
			return mov, nil
		}
	}
	return nil, nil
}
func (m *memMovementRepo) List(f repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error) {
	var filtered []*entity.StockMovement
	for _, mov := range m.store.movements {
		if f.ProductID != "" && mov.ProductID != f.ProductID {
			continue
		}
		if f.Type != "" && mov.Type != f.Type {
			continue
		}
		filtered = append(filtered, mov)
	}
	// más recientes primero: el slice se llena en orden de inserción
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}
	total := len(filtered)
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}
func (m *memMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	list, _, err := m.List(repository.MovementFilter{ProductID: productID}, len(m.store.movements), 0)
	return list, err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func newTestLedger(products ...*entity.Product) (*stock.LedgerUseCase, *memStore) {
	store := &memStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		store.products[p.ID] = p
	}
	runner := &memTxRunner{store: store}
	return stock.NewLedgerUseCase(runner, testLogger()), store
}

func productWithStock(id string, qty int64) *entity.Product {
	return &entity.Product{
		ID:             id,
		Reference:      "PRD-" + id,
		Name:           "Producto " + id,
		QuantityOnHand: decimal.NewFromInt(qty),
		AlertThreshold: decimal.NewFromInt(10),
		Active:         true,
	}
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// ENTREE
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntreeSumaStock(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 20))

	mov, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeEntree,
		Quantity:  dec(50),
		Reason:    "recepción proveedor",
	})
	require.NoError(t, err)

	assert.True(t, mov.QuantityBefore.Equal(dec(20)), "quantity_before debe ser el stock previo")
	assert.True(t, mov.QuantityAfter.Equal(dec(70)), "quantity_after debe ser 20+50")
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(dec(70)),
		"el contador del producto debe quedar en 70")
	require.Len(t, store.movements, 1)
	assert.Equal(t, "recepción proveedor", store.movements[0].Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// SORTIE
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_SortieRestaStock(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 70))

	mov, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSortie,
		Quantity:  dec(30),
	})
	require.NoError(t, err)

	assert.True(t, mov.QuantityAfter.Equal(dec(40)))
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(dec(40)))
}

func TestApplyMovement_SortieSinStock_FallaSinEfectos(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 70))

	_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSortie,
		Quantity:  dec(100),
	})
	require.Error(t, err)

	// Error tipado con los montos, y compatible con el sentinel
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.True(t, insufficient.Available.Equal(dec(70)))
	assert.True(t, insufficient.Requested.Equal(dec(100)))
	assert.Contains(t, err.Error(), "70", "el mensaje debe mencionar el disponible")
	assert.Contains(t, err.Error(), "100", "el mensaje debe mencionar lo solicitado")

	// Movimiento rechazado = no-op total
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(dec(70)),
		"el stock no debe cambiar")
	assert.Empty(t, store.movements, "no debe registrarse ningún movimiento")
}

func TestApplyMovement_SortieExacta_DejaStockEnCero(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 5))

	mov, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSortie,
		Quantity:  dec(5),
	})
	require.NoError(t, err, "sacar exactamente el stock disponible es válido")
	assert.True(t, mov.QuantityAfter.IsZero())
	assert.True(t, store.products["p1"].QuantityOnHand.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// AJUSTEMENT
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_AjustementFijaStockAbsoluto(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 100))

	mov, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeAjustement,
		Quantity:  dec(5),
		Reason:    "conteo físico",
	})
	require.NoError(t, err)

	assert.True(t, mov.QuantityBefore.Equal(dec(100)))
	assert.True(t, mov.QuantityAfter.Equal(dec(5)),
		"AJUSTEMENT fija el stock al valor indicado, no lo suma ni lo resta")
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(dec(5)))
}

func TestApplyMovement_AjustementMismoValor_RegistraMovimiento(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 5))

	mov, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeAjustement,
		Quantity:  dec(5),
	})
	require.NoError(t, err, "un ajuste al valor actual es válido")
	assert.True(t, mov.QuantityBefore.Equal(mov.QuantityAfter))
	require.Len(t, store.movements, 1, "el movimiento se registra aunque el stock no cambie")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_TipoInvalido(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 10))

	_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      "TRANSFERT",
		Quantity:  dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
	assert.Empty(t, store.movements)
}

func TestApplyMovement_CantidadNegativa(t *testing.T) {
	uc, _ := newTestLedger(productWithStock("p1", 10))

	_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeEntree,
		Quantity:  dec(-3),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	uc, _ := newTestLedger()

	_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "nope",
		Type:      entity.MovementTypeEntree,
		Quantity:  dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_ProductIDVacio(t *testing.T) {
	uc, _ := newTestLedger()

	_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		Type:     entity.MovementTypeEntree,
		Quantity: dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos SORTIE compitiendo por el mismo stock
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_SortiesConcurrentes_SoloUnaGana(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 5))

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
				ProductID: "p1",
				Type:      entity.MovementTypeSortie,
				Quantity:  dec(5),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		if err == nil {
			ok++
		} else if errors.Is(err, domain.ErrInsufficientStock) {
			insufficient++
		} else {
			t.Fatalf("error inesperado: %v", err)
		}
	}

	assert.Equal(t, 1, ok, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, insufficient, "la otra debe fallar por stock insuficiente")
	assert.True(t, store.products["p1"].QuantityOnHand.IsZero(),
		"el stock nunca debe quedar negativo")
	assert.Len(t, store.movements, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Encadenamiento before/after
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_SnapshotsEncadenan(t *testing.T) {
	uc, store := newTestLedger(productWithStock("p1", 0))

	steps := []struct {
		typ string
		qty int64
	}{
		{entity.MovementTypeEntree, 10},
		{entity.MovementTypeSortie, 4},
		{entity.MovementTypeAjustement, 20},
		{entity.MovementTypeSortie, 20},
	}
	for _, s := range steps {
		_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
			ProductID: "p1",
			Type:      s.typ,
			Quantity:  dec(s.qty),
		})
		require.NoError(t, err)
	}

	require.Len(t, store.movements, 4)
	for i := 1; i < len(store.movements); i++ {
		assert.True(t, store.movements[i].QuantityBefore.Equal(store.movements[i-1].QuantityAfter),
			"quantity_before del movimiento %d debe igualar quantity_after del anterior", i)
	}
	assert.True(t, store.products["p1"].QuantityOnHand.IsZero())
}
