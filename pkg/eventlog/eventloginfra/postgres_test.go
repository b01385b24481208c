package eventloginfra_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/eventlog"
	"github.com/Abraxas-365/journalsubmit/pkg/eventlog/eventloginfra"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestPostgresEventLogRepository(t *testing.T) {
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer raw.Close()
	repo := eventloginfra.NewPostgresEventLogRepository(sqlx.NewDb(raw, "postgres"))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO event_log")).
		WithArgs("submission", int64(42), int64(7), int64(0x10000013),
			eventlog.KeyPrivacyAccepted, []byte(`{"privacyStatement":"We keep data."}`), "10.0.0.1", at).
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(int64(99)))

	e, err := repo.Append(ctx, eventlog.Entry{
		AssocType:  eventlog.AssocTypeSubmission,
		AssocID:    42,
		UserID:     7,
		EventType:  eventlog.PrivacyAccepted,
		MessageKey: eventlog.KeyPrivacyAccepted,
		Params:     map[string]string{eventlog.ParamPrivacyStatement: "We keep data."},
		IP:         "10.0.0.1",
		DateLogged: at,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if e.ID != 99 {
		t.Fatalf("expected id from RETURNING, got %d", e.ID)
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM event_log")).
		WithArgs("submission", int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "assoc_type", "assoc_id", "user_id", "event_type", "message", "params", "ip_address", "date_logged"}).
			AddRow(int64(98), "submission", int64(42), int64(7), int64(0x10000001), eventlog.KeySubmissionSubmitted, nil, "10.0.0.1", at).
			AddRow(int64(99), "submission", int64(42), int64(7), int64(0x10000013), eventlog.KeyPrivacyAccepted, []byte(`{"privacyStatement":"We keep data."}`), "10.0.0.1", at))

	entries, err := repo.ListBySubmission(ctx, 42)
	if err != nil {
		t.Fatalf("ListBySubmission: %v", err)
	}
	if len(entries) != 2 || entries[0].EventType != eventlog.SubmissionSubmit || entries[0].Params != nil {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if entries[1].Params[eventlog.ParamPrivacyStatement] != "We keep data." {
		t.Fatalf("params not decoded: %+v", entries[1].Params)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
