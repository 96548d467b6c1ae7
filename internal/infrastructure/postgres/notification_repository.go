package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación PostgreSQL de NotificationRepository.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationColumns = `id, client_id, message, type, status, "timestamp"`

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	var typ, status string
	if err := row.Scan(&n.ID, &n.ClientID, &n.Message, &typ, &status, &n.Timestamp); err != nil {
		return nil, err
	}
	n.Type = fallback(typ, entity.NotificationIndividual)
	n.Status = fallback(status, entity.NotificationSent)
	return &n, nil
}

// GetAll devuelve las notificaciones ordenadas por timestamp descendente.
func (r *NotificationRepo) GetAll() ([]*entity.Notification, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+notificationColumns+` FROM notifications ORDER BY "timestamp" DESC, id DESC`)
	if err != nil {
		return nil, remoteErr("listar notificaciones", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, remoteErr("scan notificación", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("listar notificaciones", err)
	}
	return list, nil
}

// GetByID obtiene una notificación por ID o domain.ErrNotFound.
func (r *NotificationRepo) GetByID(id int) (*entity.Notification, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, remoteErr("obtener notificación", err)
	}
	return n, nil
}

// Create inserta la notificación y asigna su ID desde la columna identidad.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO notifications (client_id, message, type, status, "timestamp")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		notification.ClientID, notification.Message, notification.Type,
		notification.Status, notification.Timestamp,
	).Scan(&notification.ID)
	if err != nil {
		return remoteErr("insert notificación", err)
	}
	return nil
}

// Update reemplaza los campos de la notificación; domain.ErrNotFound si no existe.
func (r *NotificationRepo) Update(notification *entity.Notification) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE notifications SET client_id = $2, message = $3, type = $4, status = $5
		WHERE id = $1`,
		notification.ID, notification.ClientID, notification.Message,
		notification.Type, notification.Status,
	)
	if err != nil {
		return remoteErr("update notificación", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la notificación por ID; domain.ErrNotFound si no existe.
func (r *NotificationRepo) Delete(id int) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return remoteErr("delete notificación", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
