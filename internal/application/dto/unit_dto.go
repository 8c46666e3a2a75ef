package dto

import "time"

// CreateUnitRequest body para POST /api/unites.
type CreateUnitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

// UpdateUnitRequest body para PUT /api/unites/:id. Campos nil no se tocan.
type UpdateUnitRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Count       *int    `json:"count,omitempty"`
}

// UnitResponse representación HTTP de una unidad de medida.
type UnitResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Count       int       `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
