package repository

import "github.com/soportec/gestor-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// GetAll devuelve copias en orden de inserción; GetByID falla con
// domain.ErrNotFound cuando el ID no existe. Create asigna el ID en la entidad
// recibida.
type ClientRepository interface {
	GetAll() ([]*entity.Client, error)
	GetByID(id int) (*entity.Client, error)
	Create(client *entity.Client) error
	Update(client *entity.Client) error
	Delete(id int) error
}
