package notification

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
	"github.com/google/uuid"
)

type Manager struct {
	repo Repository
	now  func() time.Time
}

func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo, now: time.Now}
}

// CreateTrivialNotification stores a text notification for userID.
func (m *Manager) CreateTrivialNotification(ctx context.Context, userID kernel.UserID, level Level, contents string) (*Notification, error) {
	if userID.IsEmpty() {
		return nil, ErrInvalidUser()
	}
	if !level.IsValid() {
		return nil, ErrInvalidLevel().WithDetail("level", level)
	}

	n := Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Level:     level,
		Contents:  contents,
		CreatedAt: m.now().UTC(),
	}
	if err := m.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	logx.WithFields(logx.Fields{
		"notification_id": n.ID,
		"user_id":         userID,
		"level":           level,
	}).Info("notification created")
	return &n, nil
}

func (m *Manager) Unread(ctx context.Context, userID kernel.UserID) ([]Notification, error) {
	return m.repo.ListUnread(ctx, userID)
}

func (m *Manager) MarkRead(ctx context.Context, id uuid.UUID, userID kernel.UserID) error {
	return m.repo.MarkRead(ctx, id, userID)
}
