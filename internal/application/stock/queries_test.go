package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/application/stock"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
)

// seedMovements aplica una secuencia de movimientos sobre dos productos y
// devuelve las consultas listas para usar.
func seedMovements(t *testing.T) (*stock.QueryUseCase, *memStore) {
	t.Helper()
	store := &memStore{products: map[string]*entity.Product{
		"p1": productWithStock("p1", 0),
		"p2": productWithStock("p2", 0),
	}}
	runner := &memTxRunner{store: store}
	ledger := stock.NewLedgerUseCase(runner, testLogger())

	steps := []struct {
		productID string
		typ       string
		qty       int64
	}{
		{"p1", entity.MovementTypeEntree, 10},
		{"p2", entity.MovementTypeEntree, 30},
		{"p1", entity.MovementTypeSortie, 4},
		{"p1", entity.MovementTypeAjustement, 50},
		{"p2", entity.MovementTypeSortie, 1},
	}
	for _, s := range steps {
		_, err := ledger.ApplyMovement(context.Background(), stock.MovementInput{
			ProductID: s.productID,
			Type:      s.typ,
			Quantity:  dec(s.qty),
		})
		require.NoError(t, err)
	}

	movRepo := &memMovementRepo{store: store}
	productRepo := &memProductRepo{store: store}
	return stock.NewQueryUseCase(movRepo, productRepo), store
}

func TestListMovements_SinFiltro_TodosMasRecientesPrimero(t *testing.T) {
	queries, _ := seedMovements(t)

	out, err := queries.ListMovements(dto.MovementListQuery{})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Total)
	require.Len(t, out.Data, 5)
	// El último aplicado (SORTIE de p2) debe salir primero
	assert.Equal(t, "p2", out.Data[0].ProductID)
	assert.Equal(t, entity.MovementTypeSortie, out.Data[0].Type)
}

func TestListMovements_FiltroPorProducto(t *testing.T) {
	queries, _ := seedMovements(t)

	out, err := queries.ListMovements(dto.MovementListQuery{ProductID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)
	for _, m := range out.Data {
		assert.Equal(t, "p1", m.ProductID)
	}
}

func TestListMovements_FiltroPorTipo(t *testing.T) {
	queries, _ := seedMovements(t)

	out, err := queries.ListMovements(dto.MovementListQuery{Type: entity.MovementTypeSortie})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total)
	for _, m := range out.Data {
		assert.Equal(t, entity.MovementTypeSortie, m.Type)
	}
}

func TestListMovements_FiltroCombinado(t *testing.T) {
	queries, _ := seedMovements(t)

	out, err := queries.ListMovements(dto.MovementListQuery{
		ProductID: "p1",
		Type:      entity.MovementTypeEntree,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}

func TestListMovements_TipoInvalido(t *testing.T) {
	queries, _ := seedMovements(t)

	_, err := queries.ListMovements(dto.MovementListQuery{Type: "RETOUR"})
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}

func TestListMovements_Paginacion(t *testing.T) {
	queries, _ := seedMovements(t)

	page1, err := queries.ListMovements(dto.MovementListQuery{
		PageQuery: dto.PageQuery{Page: 1, Limit: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Len(t, page1.Data, 2)

	page3, err := queries.ListMovements(dto.MovementListQuery{
		PageQuery: dto.PageQuery{Page: 3, Limit: 2},
	})
	require.NoError(t, err)
	assert.Len(t, page3.Data, 1, "la última página lleva el resto")
}

func TestListByProduct_HistorialCompleto(t *testing.T) {
	queries, _ := seedMovements(t)

	out, err := queries.ListByProduct("p1")
	require.NoError(t, err)

	require.Len(t, out, 3)
	// más recientes primero
	assert.Equal(t, entity.MovementTypeAjustement, out[0].Type)
	assert.Equal(t, entity.MovementTypeSortie, out[1].Type)
	assert.Equal(t, entity.MovementTypeEntree, out[2].Type)
}

func TestGetMovement_PorID(t *testing.T) {
	queries, store := seedMovements(t)

	want := store.movements[0]
	got, err := queries.GetMovement(want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ProductID, got.ProductID)
	assert.True(t, want.Quantity.Equal(got.Quantity))
}

func TestGetMovement_Inexistente(t *testing.T) {
	queries, _ := seedMovements(t)

	_, err := queries.GetMovement("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLowStock_SoloActivosBajoUmbral(t *testing.T) {
	store := &memStore{products: map[string]*entity.Product{}}

	low := productWithStock("low", 3) // umbral 10
	high := productWithStock("high", 200)
	atThreshold := productWithStock("edge", 10) // en el umbral cuenta
	inactive := productWithStock("off", 0)
	inactive.Active = false

	for _, p := range []*entity.Product{low, high, atThreshold, inactive} {
		store.products[p.ID] = p
	}

	queries := stock.NewQueryUseCase(&memMovementRepo{store: store}, &memProductRepo{store: store})
	out, err := queries.ListLowStock()
	require.NoError(t, err)

	ids := make([]string, 0, len(out))
	for _, a := range out {
		ids = append(ids, a.ProductID)
	}
	assert.ElementsMatch(t, []string{"low", "edge"}, ids,
		"solo productos activos con stock <= umbral deben alertar")
}
