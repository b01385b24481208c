package submissioninfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
	"github.com/jmoiron/sqlx"
)

// PostgresSubmissionRepository reads submissions together with their authors
// and the per-locale settings the author accepted.
type PostgresSubmissionRepository struct {
	db *sqlx.DB
}

func NewPostgresSubmissionRepository(db *sqlx.DB) submission.SubmissionRepository {
	return &PostgresSubmissionRepository{db: db}
}

type submissionRow struct {
	ID            int64          `db:"id"`
	JournalID     int64          `db:"journal_id"`
	SubmitterID   int64          `db:"submitter_id"`
	Title         sql.NullString `db:"title"`
	Progress      int            `db:"submission_progress"`
	DateSubmitted sql.NullTime   `db:"date_submitted"`
}

type acceptanceRow struct {
	Locale           string         `db:"locale"`
	Checklist        []byte         `db:"checklist"`
	CopyrightNotice  sql.NullString `db:"copyright_notice"`
	PrivacyStatement sql.NullString `db:"privacy_statement"`
}

// FindByID loads the submission, its authors ordered by seq and its accepted settings.
func (r *PostgresSubmissionRepository) FindByID(ctx context.Context, id kernel.SubmissionID) (*submission.Submission, error) {
	var row submissionRow
	query := `
		SELECT id, journal_id, submitter_id, title, submission_progress, date_submitted
		FROM submissions WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, int64(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, submission.ErrSubmissionNotFound().WithDetail("submission_id", id)
		}
		return nil, errx.Wrap(err, "failed to find submission", errx.TypeInternal).
			WithDetail("submission_id", id)
	}

	sub := &submission.Submission{
		ID:          kernel.SubmissionID(row.ID),
		JournalID:   kernel.JournalID(row.JournalID),
		SubmitterID: kernel.UserID(row.SubmitterID),
		Title:       row.Title.String,
		Progress:    row.Progress,
	}
	if row.DateSubmitted.Valid {
		t := row.DateSubmitted.Time
		sub.DateSubmitted = &t
	}

	authors, err := r.findAuthors(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.Authors = authors

	accepted, err := r.findAcceptances(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.Accepted = accepted

	return sub, nil
}

func (r *PostgresSubmissionRepository) findAuthors(ctx context.Context, id kernel.SubmissionID) ([]submission.Author, error) {
	var authors []submission.Author
	query := `
		SELECT id, submission_id, email, given_name, family_name, seq, primary_contact
		FROM authors WHERE submission_id = $1 ORDER BY seq ASC, id ASC`
	if err := r.db.SelectContext(ctx, &authors, query, int64(id)); err != nil {
		return nil, errx.Wrap(err, "failed to list submission authors", errx.TypeInternal).
			WithDetail("submission_id", id)
	}
	return authors, nil
}

func (r *PostgresSubmissionRepository) findAcceptances(ctx context.Context, id kernel.SubmissionID) (map[kernel.Locale]submission.Acceptance, error) {
	var rows []acceptanceRow
	query := `
		SELECT locale, checklist, copyright_notice, privacy_statement
		FROM submission_acceptances WHERE submission_id = $1`
	if err := r.db.SelectContext(ctx, &rows, query, int64(id)); err != nil {
		return nil, errx.Wrap(err, "failed to list accepted submission settings", errx.TypeInternal).
			WithDetail("submission_id", id)
	}

	accepted := make(map[kernel.Locale]submission.Acceptance, len(rows))
	for _, row := range rows {
		a := submission.Acceptance{
			CopyrightNotice:  row.CopyrightNotice.String,
			PrivacyStatement: row.PrivacyStatement.String,
		}
		if len(row.Checklist) > 0 {
			if err := json.Unmarshal(row.Checklist, &a.Checklist); err != nil {
				return nil, errx.Wrap(err, "failed to decode accepted checklist", errx.TypeInternal).
					WithDetail("submission_id", id).
					WithDetail("locale", row.Locale)
			}
		}
		accepted[kernel.Locale(row.Locale)] = a
	}
	return accepted, nil
}

// MarkSubmitted closes the author workflow for the submission.
func (r *PostgresSubmissionRepository) MarkSubmitted(ctx context.Context, id kernel.SubmissionID, at time.Time) error {
	query := `
		UPDATE submissions SET
			submission_progress = 0,
			date_submitted = $2,
			date_last_activity = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, int64(id), at)
	if err != nil {
		return errx.Wrap(err, "failed to mark submission submitted", errx.TypeInternal).
			WithDetail("submission_id", id)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected on update", errx.TypeInternal)
	}
	if rowsAffected == 0 {
		return submission.ErrSubmissionNotFound().WithDetail("submission_id", id)
	}
	return nil
}
