// cmd/container.go
//
// Root composition root. Owns infrastructure (DB, Redis, mail transport) and
// composes bounded-context containers.
package main

import (
	"context"
	"strings"

	"github.com/Abraxas-365/journalsubmit/pkg/config"
	"github.com/Abraxas-365/journalsubmit/pkg/iam/iamcontainer"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx/notifxconsole"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx/notifxses"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx/notifxsesv2"
	"github.com/Abraxas-365/journalsubmit/pkg/submission/submissioncontainer"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds shared infrastructure and composed module containers.
type Container struct {
	Config *config.Config

	// Infrastructure (shared across all modules)
	DB     *sqlx.DB
	Redis  *redis.Client
	Mailer *notifx.Client

	// Bounded-context containers
	IAM        *iamcontainer.Container
	Submission *submissioncontainer.Container
}

func NewContainer(cfg *config.Config) *Container {
	logx.Info("🔧 Initializing application container...")

	c := &Container{Config: cfg}

	c.initInfrastructure()
	c.initModules()

	logx.Info("✅ Application container initialized")
	return c
}

// ---------------------------------------------------------------------------
// Infrastructure: DB, Redis, mail transport
// ---------------------------------------------------------------------------

func (c *Container) initInfrastructure() {
	logx.Info("🏗️ Initializing infrastructure...")

	// 1. Database
	db, err := sqlx.Connect("postgres", c.Config.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db
	logx.Info("  ✅ Database connected")

	// 2. Redis
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Address(),
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Fatalf("Failed to connect to Redis: %v (Redis is required)", err)
	}
	logx.Info("  ✅ Redis connected")

	// 3. Mail transport
	c.initMailer()

	logx.Info("✅ Infrastructure initialized")
}

func (c *Container) initMailer() {
	nc := c.Config.Notifx
	from := notifx.Address{Email: nc.FromAddress, Name: nc.FromName}

	var provider notifx.EmailSender
	switch nc.Provider {
	case "ses", "sesv2":
		awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), awsConfig.WithRegion(nc.AWSRegion))
		if err != nil {
			logx.Fatalf("Unable to load AWS SDK config: %v", err)
		}
		if nc.Provider == "ses" {
			provider = notifxses.NewSESProvider(ses.NewFromConfig(awsCfg), from)
		} else {
			provider = notifxsesv2.NewProvider(sesv2.NewFromConfig(awsCfg), from)
		}
		logx.Infof("  ✅ %s mail provider configured (region: %s)", strings.ToUpper(nc.Provider), nc.AWSRegion)

	case "console":
		provider = notifxconsole.NewConsoleProvider()
		logx.Info("  ✅ Console mail provider configured")

	default:
		logx.Fatalf("Unknown NOTIFX_PROVIDER: %s (use 'console', 'ses' or 'sesv2')", nc.Provider)
	}

	defaults := []notifx.Option{notifx.WithTags(parseTags(nc.Tags))}
	if nc.ConfigurationSet != "" {
		defaults = append(defaults, notifx.WithConfigID(nc.ConfigurationSet))
	}

	c.Mailer = notifx.NewClient(provider,
		notifx.WithRetry(nc.RetryAttempts, nc.RetryBackoff),
		notifx.WithDefaultOptions(defaults...),
	)
	if !nc.Enabled {
		logx.Warn("  ⚠️ Outbound mail is disabled (NOTIFX_ENABLED=false)")
	}
}

// ---------------------------------------------------------------------------
// Module composition: each bounded context wires itself
// ---------------------------------------------------------------------------

func (c *Container) initModules() {
	logx.Info("📦 Initializing modules...")

	c.IAM = iamcontainer.New(iamcontainer.Deps{Cfg: c.Config})

	c.Submission = submissioncontainer.New(submissioncontainer.Deps{
		DB:     c.DB,
		Redis:  c.Redis,
		Cfg:    c.Config,
		Mailer: c.Mailer,
	})
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func (c *Container) Cleanup() {
	logx.Info("🧹 Cleaning up resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Errorf("Error closing database: %v", err)
		} else {
			logx.Info("  ✅ Database connection closed")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("Error closing Redis: %v", err)
		} else {
			logx.Info("  ✅ Redis connection closed")
		}
	}

	logx.Info("✅ Cleanup complete")
}

// parseTags turns "key=value" pairs into provider message tags.
func parseTags(pairs []string) map[string]string {
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			logx.Warnf("Ignoring malformed mail tag %q", pair)
			continue
		}
		tags[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return tags
}
