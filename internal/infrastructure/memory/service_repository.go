package memory

import (
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación en memoria de ServiceRepository.
type ServiceRepo struct {
	store *Store
}

// NewServiceRepository construye el adaptador sobre el Store compartido.
func NewServiceRepository(store *Store) *ServiceRepo {
	return &ServiceRepo{store: store}
}

// GetAll devuelve copias de todos los servicios en orden de inserción.
func (r *ServiceRepo) GetAll() ([]*entity.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Service, 0, len(r.store.services))
	for _, s := range r.store.services {
		ss := s
		out = append(out, &ss)
	}
	return out, nil
}

// GetByID devuelve una copia del servicio o domain.ErrNotFound.
func (r *ServiceRepo) GetByID(id int) (*entity.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.services {
		if s.ID == id {
			ss := s
			return &ss, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create asigna el siguiente ID y agrega el servicio al final de la colección.
func (r *ServiceRepo) Create(service *entity.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	service.ID = r.store.nextServiceID
	r.store.nextServiceID++
	r.store.services = append(r.store.services, *service)
	return nil
}

// Update reemplaza el registro con el mismo ID o falla con domain.ErrNotFound.
func (r *ServiceRepo) Update(service *entity.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, s := range r.store.services {
		if s.ID == service.ID {
			r.store.services[i] = *service
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el servicio o falla con domain.ErrNotFound.
func (r *ServiceRepo) Delete(id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, s := range r.store.services {
		if s.ID == id {
			r.store.services = append(r.store.services[:i], r.store.services[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
