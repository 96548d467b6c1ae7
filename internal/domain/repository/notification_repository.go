package repository

import "github.com/soportec/gestor-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
// A diferencia del resto de entidades, GetAll devuelve las notificaciones
// ordenadas por timestamp descendente (las más recientes primero).
type NotificationRepository interface {
	GetAll() ([]*entity.Notification, error)
	GetByID(id int) (*entity.Notification, error)
	Create(notification *entity.Notification) error
	Update(notification *entity.Notification) error
	Delete(id int) error
}
