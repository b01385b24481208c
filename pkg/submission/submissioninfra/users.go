package submissioninfra

import (
	"context"
	"database/sql"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
	"github.com/jmoiron/sqlx"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) submission.UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id kernel.UserID) (*submission.User, error) {
	var user submission.User
	query := `SELECT id, username, email, given_name, family_name FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, int64(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, submission.ErrUserNotFound().WithDetail("user_id", id)
		}
		return nil, errx.Wrap(err, "failed to find user", errx.TypeInternal).
			WithDetail("user_id", id)
	}
	return &user, nil
}

// FullName resolves only the display name, used for impersonation banners.
func (r *PostgresUserRepository) FullName(ctx context.Context, id kernel.UserID) (string, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.FullName(), nil
}

type PostgresJournalRepository struct {
	db *sqlx.DB
}

func NewPostgresJournalRepository(db *sqlx.DB) submission.JournalRepository {
	return &PostgresJournalRepository{db: db}
}

const journalColumns = `
	id, path, name, contact_email, contact_name, primary_locale,
	copy_submission_ack_primary_contact, copy_submission_ack_address`

func (r *PostgresJournalRepository) FindByPath(ctx context.Context, path string) (*submission.Journal, error) {
	var journal submission.Journal
	query := `SELECT ` + journalColumns + ` FROM journals WHERE path = $1 AND enabled = TRUE`
	if err := r.db.GetContext(ctx, &journal, query, path); err != nil {
		if err == sql.ErrNoRows {
			return nil, submission.ErrJournalNotFound().WithDetail("path", path)
		}
		return nil, errx.Wrap(err, "failed to find journal by path", errx.TypeInternal).
			WithDetail("path", path)
	}
	return &journal, nil
}

func (r *PostgresJournalRepository) FindByID(ctx context.Context, id kernel.JournalID) (*submission.Journal, error) {
	var journal submission.Journal
	query := `SELECT ` + journalColumns + ` FROM journals WHERE id = $1`
	if err := r.db.GetContext(ctx, &journal, query, int64(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, submission.ErrJournalNotFound().WithDetail("journal_id", id)
		}
		return nil, errx.Wrap(err, "failed to find journal", errx.TypeInternal).
			WithDetail("journal_id", id)
	}
	return &journal, nil
}
