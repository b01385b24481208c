package notifxses

import (
	"context"
	"sort"

	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// API is the subset of the SES client used by the provider.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESProvider implements notifx.EmailSender using AWS SES.
type SESProvider struct {
	client API
	from   notifx.Address
}

// NewSESProvider creates a new SES email provider. from is used when a message has no sender.
func NewSESProvider(client API, from notifx.Address) *SESProvider {
	return &SESProvider{client: client, from: from}
}

// SendEmail sends a single email via SES.
func (p *SESProvider) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) error {
	so := notifx.ApplyOptions(opts)

	input := buildInput(msg, p.from, so)

	if _, err := p.client.SendEmail(ctx, input); err != nil {
		return sesErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", notifx.Strings(msg.To)).
			WithDetail("subject", msg.Subject)
	}
	return nil
}

func buildInput(msg notifx.EmailMessage, fallback notifx.Address, so notifx.SendOptions) *ses.SendEmailInput {
	from := msg.From
	if from.Email == "" {
		from = fallback
	}

	body := &types.Body{}
	if msg.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String("UTF-8")}
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")}
	}

	input := &ses.SendEmailInput{
		Source: aws.String(from.String()),
		Destination: &types.Destination{
			ToAddresses:  notifx.Strings(msg.To),
			CcAddresses:  notifx.Strings(msg.CC),
			BccAddresses: notifx.Strings(msg.BCC),
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	if so.ConfigID != "" {
		input.ConfigurationSetName = aws.String(so.ConfigID)
	}

	keys := make([]string, 0, len(so.Tags))
	for k := range so.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		input.Tags = append(input.Tags, types.MessageTag{Name: aws.String(k), Value: aws.String(so.Tags[k])})
	}

	return input
}
