package submissioncontainer

import (
	"github.com/Abraxas-365/journalsubmit/pkg/config"
	"github.com/Abraxas-365/journalsubmit/pkg/eventlog"
	"github.com/Abraxas-365/journalsubmit/pkg/eventlog/eventloginfra"
	"github.com/Abraxas-365/journalsubmit/pkg/i18n"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
	"github.com/Abraxas-365/journalsubmit/pkg/mail"
	"github.com/Abraxas-365/journalsubmit/pkg/mail/mailinfra"
	"github.com/Abraxas-365/journalsubmit/pkg/notification"
	"github.com/Abraxas-365/journalsubmit/pkg/notification/notificationinfra"
	"github.com/Abraxas-365/journalsubmit/pkg/routing"
	"github.com/Abraxas-365/journalsubmit/pkg/session/sessioninfra"
	"github.com/Abraxas-365/journalsubmit/pkg/submission/submissionapi"
	"github.com/Abraxas-365/journalsubmit/pkg/submission/submissioninfra"
	"github.com/Abraxas-365/journalsubmit/pkg/submission/submissionsrv"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// ---------------------------------------------------------------------------
// Deps: explicit external dependencies this bounded context requires.
// ---------------------------------------------------------------------------

type Deps struct {
	DB    *sqlx.DB
	Redis *redis.Client
	Cfg   *config.Config

	// Mailer delivers rendered templates, normally a *notifx.Client
	Mailer mail.Deliverer
}

// ---------------------------------------------------------------------------
// Container: the public surface of the submission module.
// ---------------------------------------------------------------------------

type Container struct {
	SubmissionService *submissionsrv.Service
	Notifications     *notification.Manager
	Events            *eventlog.Logger
	Templates         *mailinfra.CachedTemplateStore

	// API handlers, needed by cmd/ to register routes
	SubmissionHandlers *submissionapi.SubmissionHandlers
}

// New builds the graph in order: repos, collaborators, steps, service, handlers.
func New(deps Deps) *Container {
	logx.Info("🔧 Initializing submission container...")

	c := &Container{}
	defaultLocale := kernel.Locale(deps.Cfg.App.DefaultLocale)

	// ── Repositories ─────────────────────────────────────────────────────

	submissions := submissioninfra.NewPostgresSubmissionRepository(deps.DB)
	users := submissioninfra.NewPostgresUserRepository(deps.DB)
	journals := submissioninfra.NewPostgresJournalRepository(deps.DB)
	sessions := sessioninfra.NewRedisStore(deps.Redis, deps.Cfg.App.SessionTTL)

	c.Templates = mailinfra.NewCachedTemplateStore(
		mailinfra.NewPostgresTemplateStore(deps.DB),
		deps.Redis,
		deps.Cfg.App.TemplateCacheTTL,
	)

	logx.Info("  ✅ Submission repositories initialized")

	// ── Collaborators ────────────────────────────────────────────────────

	mails := mail.NewFactory(
		c.Templates,
		mailinfra.NewPostgresEditorDirectory(deps.DB),
		deps.Mailer,
		deps.Cfg.Notifx.Enabled,
		defaultLocale,
	)
	c.Notifications = notification.NewManager(notificationinfra.NewPostgresNotificationRepository(deps.DB))
	c.Events = eventlog.NewLogger(eventloginfra.NewPostgresEventLogRepository(deps.DB))

	// ── Services ─────────────────────────────────────────────────────────

	finalizer := submissionsrv.NewFinalizer(
		mails,
		c.Notifications,
		c.Events,
		users,
		routing.NewRouter(deps.Cfg.App.BaseURL),
		i18n.NewCatalog(defaultLocale),
	)
	step := submissionsrv.NewStep4(submissionsrv.NewCompletionStep(submissions), finalizer)
	c.SubmissionService = submissionsrv.NewService(journals, users, submissions, sessions, step)

	logx.Info("  ✅ Submission services initialized")

	// ── Handlers ─────────────────────────────────────────────────────────

	c.SubmissionHandlers = submissionapi.NewSubmissionHandlers(c.SubmissionService)

	logx.Info("✅ Submission container initialized")
	return c
}
