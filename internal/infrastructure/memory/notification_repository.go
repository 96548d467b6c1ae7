package memory

import (
	"sort"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación en memoria de NotificationRepository.
type NotificationRepo struct {
	store *Store
}

// NewNotificationRepository construye el adaptador sobre el Store compartido.
func NewNotificationRepository(store *Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

// GetAll devuelve copias ordenadas por timestamp descendente. El orden se
// aplica al leer; la colección interna conserva el orden de inserción.
func (r *NotificationRepo) GetAll() ([]*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Notification, 0, len(r.store.notifications))
	for _, n := range r.store.notifications {
		nn := copyNotification(n)
		out = append(out, &nn)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// GetByID devuelve una copia de la notificación o domain.ErrNotFound.
func (r *NotificationRepo) GetByID(id int) (*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, n := range r.store.notifications {
		if n.ID == id {
			nn := copyNotification(n)
			return &nn, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create asigna el siguiente ID y agrega la notificación al final de la colección.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	notification.ID = r.store.nextNotificationID
	r.store.nextNotificationID++
	r.store.notifications = append(r.store.notifications, copyNotification(*notification))
	return nil
}

// Update reemplaza el registro con el mismo ID o falla con domain.ErrNotFound.
func (r *NotificationRepo) Update(notification *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, n := range r.store.notifications {
		if n.ID == notification.ID {
			r.store.notifications[i] = copyNotification(*notification)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la notificación o falla con domain.ErrNotFound.
func (r *NotificationRepo) Delete(id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, n := range r.store.notifications {
		if n.ID == id {
			r.store.notifications = append(r.store.notifications[:i], r.store.notifications[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
