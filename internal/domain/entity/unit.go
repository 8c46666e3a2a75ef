package entity

import "time"

// Unit representa una unidad de medida del catálogo (pieza, caja, kg...).
type Unit struct {
	ID          string
	Name        string
	Description string
	Count       int // cantidad de piezas que agrupa la unidad (ej. caja de 12)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
