package eventloginfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/eventlog"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresEventLogRepository struct {
	db *sqlx.DB
}

func NewPostgresEventLogRepository(db *sqlx.DB) eventlog.Repository {
	return &PostgresEventLogRepository{db: db}
}

type entryRow struct {
	ID         int64     `db:"log_id"`
	AssocType  string    `db:"assoc_type"`
	AssocID    int64     `db:"assoc_id"`
	UserID     int64     `db:"user_id"`
	EventType  int64     `db:"event_type"`
	MessageKey string    `db:"message"`
	Params     []byte    `db:"params"`
	IP         string    `db:"ip_address"`
	DateLogged time.Time `db:"date_logged"`
}

func (r entryRow) toDomain() (eventlog.Entry, error) {
	e := eventlog.Entry{
		ID:         r.ID,
		AssocType:  r.AssocType,
		AssocID:    kernel.SubmissionID(r.AssocID),
		UserID:     kernel.UserID(r.UserID),
		EventType:  eventlog.EventType(r.EventType),
		MessageKey: r.MessageKey,
		IP:         r.IP,
		DateLogged: r.DateLogged,
	}
	if len(r.Params) > 0 {
		if err := json.Unmarshal(r.Params, &e.Params); err != nil {
			return e, err
		}
	}
	return e, nil
}

func (r *PostgresEventLogRepository) Append(ctx context.Context, e eventlog.Entry) (eventlog.Entry, error) {
	params, err := json.Marshal(e.Params)
	if err != nil {
		return e, errx.Wrap(err, "failed to encode event params", errx.TypeInternal)
	}
	if e.Params == nil {
		params = nil
	}

	query := `
		INSERT INTO event_log (assoc_type, assoc_id, user_id, event_type, message, params, ip_address, date_logged)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING log_id`
	err = r.db.QueryRowxContext(ctx, query,
		e.AssocType, int64(e.AssocID), int64(e.UserID), int64(e.EventType),
		e.MessageKey, params, e.IP, e.DateLogged,
	).Scan(&e.ID)
	if err != nil {
		return e, errx.Wrap(err, "failed to append event log entry", errx.TypeInternal).
			WithDetail("submission_id", e.AssocID).
			WithDetail("message", e.MessageKey)
	}
	return e, nil
}

func (r *PostgresEventLogRepository) ListBySubmission(ctx context.Context, submissionID kernel.SubmissionID) ([]eventlog.Entry, error) {
	var rows []entryRow
	query := `
		SELECT log_id, assoc_type, assoc_id, user_id, event_type, message, params, ip_address, date_logged
		FROM event_log
		WHERE assoc_type = $1 AND assoc_id = $2
		ORDER BY log_id ASC`
	if err := r.db.SelectContext(ctx, &rows, query, eventlog.AssocTypeSubmission, int64(submissionID)); err != nil {
		return nil, errx.Wrap(err, "failed to list event log", errx.TypeInternal).
			WithDetail("submission_id", submissionID)
	}

	out := make([]eventlog.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, errx.Wrap(err, "failed to decode event params", errx.TypeInternal).
				WithDetail("log_id", row.ID)
		}
		out = append(out, e)
	}
	return out, nil
}
