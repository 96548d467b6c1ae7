package usecase

import (
	"fmt"
	"time"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// NotificationUseCase casos de uso de notificaciones a clientes.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List devuelve las notificaciones que pasan los filtros activos, de la más
// reciente a la más antigua.
func (uc *NotificationUseCase) List(filter dto.NotificationFilter) ([]dto.NotificationResponse, error) {
	all, err := uc.notifications.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(all))
	for _, n := range all {
		if !matchNotification(n, filter) {
			continue
		}
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// GetByID devuelve la notificación o domain.ErrNotFound.
func (uc *NotificationUseCase) GetByID(id int) (*dto.NotificationResponse, error) {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toNotificationResponse(n)
	return &resp, nil
}

// Create registra una notificación. El mensaje es obligatorio; una
// notificación individual exige clientId y una difusión general lo omite.
func (uc *NotificationUseCase) Create(in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if in.Message == "" {
		return nil, fmt.Errorf("message es requerido: %w", domain.ErrInvalidInput)
	}
	typ := in.Type
	if typ == "" {
		if in.ClientID != nil {
			typ = entity.NotificationIndividual
		} else {
			typ = entity.NotificationBroadcast
		}
	}
	if !entity.ValidNotificationType(typ) {
		return nil, fmt.Errorf("type %q inválido: %w", typ, domain.ErrInvalidInput)
	}
	if typ == entity.NotificationIndividual && in.ClientID == nil {
		return nil, fmt.Errorf("una notificación individual requiere clientId: %w", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.NotificationSent
	}
	if !entity.ValidNotificationStatus(status) {
		return nil, fmt.Errorf("status %q inválido: %w", status, domain.ErrInvalidInput)
	}

	notification := &entity.Notification{
		ClientID:  in.ClientID,
		Message:   in.Message,
		Type:      typ,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.notifications.Create(notification); err != nil {
		return nil, err
	}
	resp := toNotificationResponse(notification)
	return &resp, nil
}

// Update aplica una mezcla parcial sobre la notificación existente.
func (uc *NotificationUseCase) Update(id int, in dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	notification, err := uc.notifications.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.ClientID != nil {
		clientID := *in.ClientID
		notification.ClientID = &clientID
	}
	if in.Message != nil {
		if *in.Message == "" {
			return nil, fmt.Errorf("message no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		notification.Message = *in.Message
	}
	if in.Type != nil {
		if !entity.ValidNotificationType(*in.Type) {
			return nil, fmt.Errorf("type %q inválido: %w", *in.Type, domain.ErrInvalidInput)
		}
		notification.Type = *in.Type
	}
	if in.Status != nil {
		if !entity.ValidNotificationStatus(*in.Status) {
			return nil, fmt.Errorf("status %q inválido: %w", *in.Status, domain.ErrInvalidInput)
		}
		notification.Status = *in.Status
	}
	if notification.Type == entity.NotificationIndividual && notification.ClientID == nil {
		return nil, fmt.Errorf("una notificación individual requiere clientId: %w", domain.ErrInvalidInput)
	}
	if err := uc.notifications.Update(notification); err != nil {
		return nil, err
	}
	resp := toNotificationResponse(notification)
	return &resp, nil
}

// Delete elimina la notificación o falla con domain.ErrNotFound.
func (uc *NotificationUseCase) Delete(id int) error {
	return uc.notifications.Delete(id)
}
