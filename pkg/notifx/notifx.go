package notifx

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/asyncx"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
)

// EmailSender sends a single email.
type EmailSender interface {
	SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) error
}

// Client is the main entry point for sending email. It validates messages,
// renders Liquid templates and retries transient provider failures.
type Client struct {
	provider    EmailSender
	templates   *TemplateRegistry
	retry       asyncx.Policy
	defaultOpts []Option
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithRetry retries transient failures attempts times, doubling backoff each time.
func WithRetry(attempts int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.retry.Attempts = attempts
		c.retry.Delay = backoff
	}
}

// WithDefaultOptions applies opts to every send.
func WithDefaultOptions(opts ...Option) ClientOption {
	return func(c *Client) {
		c.defaultOpts = append(c.defaultOpts, opts...)
	}
}

// NewClient creates a new notification client.
func NewClient(provider EmailSender, opts ...ClientOption) *Client {
	c := &Client{
		provider:  provider,
		templates: NewTemplateRegistry(),
		retry: asyncx.Policy{
			Attempts:  1,
			Retryable: func(err error) bool { return !IsPermanent(err) },
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Templates exposes the client's template registry.
func (c *Client) Templates() *TemplateRegistry {
	return c.templates
}

// SendEmail validates msg and hands it to the provider.
func (c *Client) SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) error {
	if len(msg.To) == 0 {
		return notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "no recipients")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "empty subject")
	}

	all := append(append([]Option{}, c.defaultOpts...), opts...)

	attempt := 0
	err := asyncx.RetryWithBackoff(ctx, c.retry, func(ctx context.Context) error {
		attempt++
		err := c.provider.SendEmail(ctx, msg, all...)
		if err != nil && attempt < c.retry.Attempts {
			logx.WithError(err).WithField("attempt", attempt).Debug("notifx: send attempt failed, retrying")
		}
		return err
	})
	if err != nil {
		return notifxErrors.NewWithCause(ErrSendFailed, err).WithDetail("to", Strings(msg.To))
	}
	return nil
}

// RenderAndSend renders subject and body from Liquid sources with params and sends the result.
func (c *Client) RenderAndSend(ctx context.Context, subjectTpl, bodyTpl string, params map[string]string, msg EmailMessage, opts ...Option) error {
	subject, err := c.templates.RenderString(subjectTpl, params)
	if err != nil {
		return err
	}
	body, err := c.templates.RenderString(bodyTpl, params)
	if err != nil {
		return err
	}

	msg.Subject = strings.TrimSpace(subject)
	msg.HTMLBody = body
	return c.SendEmail(ctx, msg, opts...)
}
