package notifx

import (
	"fmt"
	"net/mail"
)

// Address is a mailbox with an optional display name.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// String renders the address in RFC 5322 form.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	From     Address   `json:"from"`
	To       []Address `json:"to"`
	CC       []Address `json:"cc,omitempty"`
	BCC      []Address `json:"bcc,omitempty"`
	ReplyTo  string    `json:"reply_to,omitempty"`
	Subject  string    `json:"subject"`
	TextBody string    `json:"text_body,omitempty"`
	HTMLBody string    `json:"html_body,omitempty"`
}

// Strings flattens a list of addresses for providers that take plain strings.
func Strings(addrs []Address) []string {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

func (m EmailMessage) String() string {
	return fmt.Sprintf("to=%v subject=%q", Strings(m.To), m.Subject)
}
