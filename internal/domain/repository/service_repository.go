package repository

import "github.com/soportec/gestor-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	GetAll() ([]*entity.Service, error)
	GetByID(id int) (*entity.Service, error)
	Create(service *entity.Service) error
	Update(service *entity.Service) error
	Delete(id int) error
}
