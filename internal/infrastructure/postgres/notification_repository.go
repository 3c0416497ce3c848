package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationColumns = `id, user_id, title, message, type, related_id, related_type, read, created_at`

// notificationScopeClause traducción SQL de NotificationScope.Matches.
// $1 = All, $2 = UserID, $3 = SaleIDs, $4 = IncidentIDs.
const notificationScopeClause = `($1
	OR user_id = $2
	OR (related_type = 'sale' AND related_id = ANY($3))
	OR (related_type = 'incident' AND related_id = ANY($4)))`

// Create persiste una notificación.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, related_id, related_type, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.UserID, notification.Title, notification.Message,
		notification.Type, notification.RelatedID, notification.RelatedType,
		notification.Read, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListVisible notificaciones dentro del ámbito del actor, más recientes primero.
func (r *NotificationRepo) ListVisible(scope repository.NotificationScope, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE ` + notificationScopeClause + `
		ORDER BY created_at DESC
		LIMIT $5`
	rows, err := r.q.Query(context.Background(), query,
		scope.All, scope.UserID, scope.SaleIDs, scope.IncidentIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

// CountUnread número de notificaciones no leídas dentro del ámbito.
func (r *NotificationRepo) CountUnread(scope repository.NotificationScope) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE NOT read AND ` + notificationScopeClause
	err := r.q.QueryRow(context.Background(), query,
		scope.All, scope.UserID, scope.SaleIDs, scope.IncidentIDs).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead marca como leídas todas las notificaciones dentro del ámbito.
func (r *NotificationRepo) MarkAllRead(scope repository.NotificationScope) error {
	query := `
		UPDATE notifications SET read = true
		WHERE NOT read AND ` + notificationScopeClause
	_, err := r.q.Exec(context.Background(), query,
		scope.All, scope.UserID, scope.SaleIDs, scope.IncidentIDs)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type,
		&n.RelatedID, &n.RelatedType, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
