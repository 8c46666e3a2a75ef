package repository

import "github.com/tu-usuario/facturacion-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	// List busca por nombre (search vacío = todos) con paginación; devuelve también el total.
	List(search string, limit, offset int) ([]*entity.Client, int, error)
	Delete(id string) error
}
