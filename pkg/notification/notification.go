package notification

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/google/uuid"
)

// Level is the severity shown on an in-app notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelSuccess, LevelInfo, LevelWarning, LevelError:
		return true
	}
	return false
}

// Notification is a "trivial" in-app message: text only, no linked object.
type Notification struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	UserID    kernel.UserID `db:"user_id" json:"user_id"`
	Level     Level         `db:"level" json:"level"`
	Contents  string        `db:"contents" json:"contents"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	ReadAt    *time.Time    `db:"read_at" json:"read_at,omitempty"`
}

type Repository interface {
	Create(ctx context.Context, n Notification) error
	ListUnread(ctx context.Context, userID kernel.UserID) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID kernel.UserID) error
}

// Notifier is what callers need to raise a trivial notification.
type Notifier interface {
	CreateTrivialNotification(ctx context.Context, userID kernel.UserID, level Level, contents string) (*Notification, error)
}
