package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock (enumeración cerrada).
// La interpretación de Quantity queda fija por tipo: delta para ENTREE/SORTIE,
// valor absoluto para AJUSTEMENT.
const (
	MovementTypeEntree     = "ENTREE"     // entrada: suma al stock
	MovementTypeSortie     = "SORTIE"     // salida: resta del stock
	MovementTypeAjustement = "AJUSTEMENT" // ajuste: fija el stock al valor indicado
)

// ValidMovementType verifica que el tipo pertenezca a la enumeración.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntree, MovementTypeSortie, MovementTypeAjustement:
		return true
	}
	return false
}

// StockMovement es un hecho inmutable del libro de stock: "en este momento el
// stock cambió por esta razón". Nunca se actualiza ni se borra; las correcciones
// se hacen con nuevos movimientos AJUSTEMENT.
type StockMovement struct {
	ID             string
	ProductID      string
	Type           string
	Quantity       decimal.Decimal // magnitud (ENTREE/SORTIE) o valor objetivo (AJUSTEMENT)
	QuantityBefore decimal.Decimal // stock justo antes de aplicar el movimiento
	QuantityAfter  decimal.Decimal // stock justo después; autoverificable sin leer el producto
	Reason         string          // anotación libre, opcional
	InvoiceID      *string         // referencia débil a la factura que lo originó
	CreatedAt      time.Time
}
