package memory

import (
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación en memoria de ClientRepository.
type ClientRepo struct {
	store *Store
}

// NewClientRepository construye el adaptador sobre el Store compartido.
func NewClientRepository(store *Store) *ClientRepo {
	return &ClientRepo{store: store}
}

// GetAll devuelve copias de todos los clientes en orden de inserción.
func (r *ClientRepo) GetAll() ([]*entity.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Client, 0, len(r.store.clients))
	for _, c := range r.store.clients {
		cc := copyClient(c)
		out = append(out, &cc)
	}
	return out, nil
}

// GetByID devuelve una copia del cliente o domain.ErrNotFound.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.clients {
		if c.ID == id {
			cc := copyClient(c)
			return &cc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create asigna el siguiente ID y agrega el cliente al final de la colección.
func (r *ClientRepo) Create(client *entity.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	client.ID = r.store.nextClientID
	r.store.nextClientID++
	r.store.clients = append(r.store.clients, copyClient(*client))
	return nil
}

// Update reemplaza el registro con el mismo ID o falla con domain.ErrNotFound.
func (r *ClientRepo) Update(client *entity.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, c := range r.store.clients {
		if c.ID == client.ID {
			r.store.clients[i] = copyClient(*client)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el cliente o falla con domain.ErrNotFound.
func (r *ClientRepo) Delete(id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, c := range r.store.clients {
		if c.ID == id {
			r.store.clients = append(r.store.clients[:i], r.store.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
