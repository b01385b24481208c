package notifxsesv2

import (
	"context"
	"sort"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var sesv2Errors = errx.NewRegistry("NOTIFX_SESV2")

var ErrSendFailed = sesv2Errors.Register("SEND_FAILED", errx.TypeExternal, 502, "SES v2 send email failed")

// API is the subset of the SES v2 client used by the provider.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Provider implements notifx.EmailSender on the SES v2 API.
type Provider struct {
	client API
	from   notifx.Address
}

func NewProvider(client API, from notifx.Address) *Provider {
	return &Provider{client: client, from: from}
}

func (p *Provider) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) error {
	so := notifx.ApplyOptions(opts)

	from := msg.From
	if from.Email == "" {
		from = p.from
	}

	body := &types.Body{}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")}
	}
	if msg.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from.String()),
		Destination: &types.Destination{
			ToAddresses:  notifx.Strings(msg.To),
			CcAddresses:  notifx.Strings(msg.CC),
			BccAddresses: notifx.Strings(msg.BCC),
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
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
		input.EmailTags = append(input.EmailTags, types.MessageTag{Name: aws.String(k), Value: aws.String(so.Tags[k])})
	}

	if _, err := p.client.SendEmail(ctx, input); err != nil {
		return sesv2Errors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", notifx.Strings(msg.To)).
			WithDetail("subject", msg.Subject)
	}
	return nil
}
