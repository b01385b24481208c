package notifxsesv2_test

import (
	"context"
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx/notifxsesv2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

type recorder struct{ in *sesv2.SendEmailInput }

func (r *recorder) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	r.in = in
	return &sesv2.SendEmailOutput{}, nil
}

func TestProvider_SimpleContent(t *testing.T) {
	rec := &recorder{}
	p := notifxsesv2.NewProvider(rec, notifx.Address{Email: "noreply@example.org", Name: "Journal"})

	err := p.SendEmail(context.Background(), notifx.EmailMessage{
		To:       []notifx.Address{{Email: "a@uni.edu"}},
		Subject:  "Hello",
		HTMLBody: "<b>hi</b>",
	}, notifx.WithTags(map[string]string{"b": "2", "a": "1"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if aws.ToString(rec.in.FromEmailAddress) != `"Journal" <noreply@example.org>` {
		t.Fatalf("unexpected from %q", aws.ToString(rec.in.FromEmailAddress))
	}
	if aws.ToString(rec.in.Content.Simple.Body.Html.Data) != "<b>hi</b>" {
		t.Fatal("html body not set")
	}
	if aws.ToString(rec.in.EmailTags[0].Name) != "a" {
		t.Fatal("tags should be sorted by name")
	}
}
