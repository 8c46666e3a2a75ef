package entity

import "time"

// Client representa un cliente de facturación.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
