package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura con sus líneas.
// Crear una factura descuenta stock (un movimiento SORTIE por línea) en la
// misma transacción; borrarla no lo restituye: el historial es append-only.
type Invoice struct {
	ID        string
	Number    string // numérico de 10 dígitos, único
	ClientID  string
	IssueDate time.Time
	DueDate   time.Time
	Lines     []InvoiceLine
	Total     decimal.Decimal
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceLine representa una línea de detalle de una factura.
type InvoiceLine struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal // Quantity * UnitPrice redondeado a 2 decimales
}
