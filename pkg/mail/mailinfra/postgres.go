package mailinfra

import (
	"context"
	"database/sql"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/mail"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresTemplateStore reads email templates. A journal row overrides the
// site-wide default row (journal_id IS NULL) for the same key and locale.
type PostgresTemplateStore struct {
	db *sqlx.DB
}

func NewPostgresTemplateStore(db *sqlx.DB) *PostgresTemplateStore {
	return &PostgresTemplateStore{db: db}
}

type templateRow struct {
	JournalID sql.NullInt64 `db:"journal_id"`
	Key       string        `db:"email_key"`
	Locale    string        `db:"locale"`
	Subject   string        `db:"subject"`
	Body      string        `db:"body"`
	Enabled   bool          `db:"enabled"`
}

func (r templateRow) toDomain() *mail.Template {
	tpl := &mail.Template{
		Key:     mail.Key(r.Key),
		Locale:  kernel.Locale(r.Locale),
		Subject: r.Subject,
		Body:    r.Body,
		Enabled: r.Enabled,
	}
	if r.JournalID.Valid {
		id := kernel.JournalID(r.JournalID.Int64)
		tpl.JournalID = &id
	}
	return tpl
}

func (s *PostgresTemplateStore) Find(ctx context.Context, journalID kernel.JournalID, key mail.Key, locale kernel.Locale) (*mail.Template, error) {
	var row templateRow
	query := `
		SELECT journal_id, email_key, locale, subject, body, enabled
		FROM email_templates
		WHERE email_key = $1 AND locale = $2 AND (journal_id = $3 OR journal_id IS NULL)
		ORDER BY journal_id NULLS LAST
		LIMIT 1`
	err := s.db.GetContext(ctx, &row, query, string(key), string(locale), int64(journalID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, mail.ErrTemplateNotFound().
				WithDetail("key", key).
				WithDetail("locale", locale)
		}
		return nil, errx.Wrap(err, "failed to find email template", errx.TypeInternal).
			WithDetail("key", key)
	}
	return row.toDomain(), nil
}

// PostgresEditorDirectory resolves editors through stage assignments.
type PostgresEditorDirectory struct {
	db    *sqlx.DB
	roles []string
}

func NewPostgresEditorDirectory(db *sqlx.DB) *PostgresEditorDirectory {
	return &PostgresEditorDirectory{db: db, roles: mail.SubEditorRoles}
}

type editorRow struct {
	ID         int64  `db:"id"`
	Email      string `db:"email"`
	GivenName  string `db:"given_name"`
	FamilyName string `db:"family_name"`
}

func (d *PostgresEditorDirectory) AssignedSubEditors(ctx context.Context, submissionID kernel.SubmissionID, stage mail.StageID) ([]notifx.Address, error) {
	var rows []editorRow
	query := `
		SELECT DISTINCT u.id, u.email, u.given_name, u.family_name
		FROM stage_assignments sa
		JOIN user_group_stages ugs ON ugs.user_group_id = sa.user_group_id
		JOIN user_groups ug ON ug.id = sa.user_group_id
		JOIN users u ON u.id = sa.user_id
		WHERE sa.submission_id = $1 AND ugs.stage_id = $2 AND ug.role = ANY($3)
		ORDER BY u.id`
	err := d.db.SelectContext(ctx, &rows, query, int64(submissionID), int(stage), pq.Array(d.roles))
	if err != nil {
		return nil, errx.Wrap(err, "failed to list assigned sub-editors", errx.TypeInternal).
			WithDetail("submission_id", submissionID).
			WithDetail("stage_id", stage)
	}

	out := make([]notifx.Address, 0, len(rows))
	for _, r := range rows {
		name := r.GivenName
		if r.FamilyName != "" {
			name += " " + r.FamilyName
		}
		out = append(out, notifx.Address{Email: r.Email, Name: name})
	}
	return out, nil
}
