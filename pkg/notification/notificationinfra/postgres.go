package notificationinfra

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/notification"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostgresNotificationRepository struct {
	db *sqlx.DB
}

func NewPostgresNotificationRepository(db *sqlx.DB) notification.Repository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, level, contents, created_at)
		VALUES (:id, :user_id, :level, :contents, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return errx.Wrap(err, "failed to create notification", errx.TypeInternal).
			WithDetail("user_id", n.UserID)
	}
	return nil
}

func (r *PostgresNotificationRepository) ListUnread(ctx context.Context, userID kernel.UserID) ([]notification.Notification, error) {
	var out []notification.Notification
	query := `
		SELECT id, user_id, level, contents, created_at, read_at
		FROM notifications
		WHERE user_id = $1 AND read_at IS NULL
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &out, query, int64(userID)); err != nil {
		return nil, errx.Wrap(err, "failed to list unread notifications", errx.TypeInternal).
			WithDetail("user_id", userID)
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID kernel.UserID) error {
	query := `UPDATE notifications SET read_at = $3 WHERE id = $1 AND user_id = $2 AND read_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, id, int64(userID), time.Now().UTC())
	if err != nil {
		return errx.Wrap(err, "failed to mark notification read", errx.TypeInternal).
			WithDetail("notification_id", id)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected on update", errx.TypeInternal)
	}
	if rowsAffected == 0 {
		return notification.ErrNotFound().WithDetail("notification_id", id)
	}
	return nil
}
