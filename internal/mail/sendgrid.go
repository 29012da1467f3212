package mail

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendGridTransport sends through the SendGrid v3 mail API.
type SendGridTransport struct {
	key  string
	host string
	from *sgmail.Email
}

var _ Transport = (*SendGridTransport)(nil)

// NewSendGridTransport creates a SendGrid transport.
func NewSendGridTransport(key string, from mail.Address) *SendGridTransport {
	return &SendGridTransport{
		key:  key,
		host: sendgridHost,
		from: sgmail.NewEmail(from.Name, from.Address),
	}
}

func (t *SendGridTransport) Name() string { return ProviderSendGrid }

func (t *SendGridTransport) prepare(msg *Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(t.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.TextContent))
	if msg.HTMLContent != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLContent))
	}
	return m
}

func (t *SendGridTransport) Send(ctx context.Context, msg *Message) error {
	req := sendgrid.GetRequest(t.key, sendgridEndpoint, t.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(t.prepare(msg))

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
