package config

import "time"

// NotifxConfig configures outbound email.
type NotifxConfig struct {
	// Provider is one of console, ses, sesv2
	Provider    string
	Enabled     bool
	FromAddress string
	FromName    string
	AWSRegion   string

	// ConfigurationSet is passed to SES when set
	ConfigurationSet string
	Tags             []string

	RetryAttempts int
	RetryBackoff  time.Duration
}

func loadNotifxConfig() NotifxConfig {
	return NotifxConfig{
		Provider:         getEnv("NOTIFX_PROVIDER", "console"),
		Enabled:          getEnvBool("NOTIFX_ENABLED", true),
		FromAddress:      getEnv("NOTIFX_FROM_ADDRESS", getEnv("EMAIL_FROM_ADDRESS", "noreply@journalsubmit.org")),
		FromName:         getEnv("NOTIFX_FROM_NAME", getEnv("EMAIL_FROM_NAME", "Journal Submissions")),
		AWSRegion:        getEnv("NOTIFX_AWS_REGION", getEnv("AWS_REGION", "us-east-1")),
		ConfigurationSet: getEnv("NOTIFX_SES_CONFIGURATION_SET", ""),
		Tags:             getEnvStringSlice("NOTIFX_TAGS", []string{"app=journalsubmit"}),
		RetryAttempts:    getEnvInt("NOTIFX_RETRY_ATTEMPTS", 2),
		RetryBackoff:     getEnvDuration("NOTIFX_RETRY_BACKOFF", 200*time.Millisecond),
	}
}
