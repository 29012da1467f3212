package mail

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"strings"
	"time"
)

// Providers selectable through MAIL_PROVIDER.
const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderConsole  = "console"
)

// Transport delivers rendered messages.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
	// Name identifies the provider in logs and metrics.
	Name() string
}

// Options configures NewTransport.
type Options struct {
	Provider     string
	From         mail.Address
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SendGridKey  string
}

// NewTransport builds the transport named by opts.Provider.
func NewTransport(opts Options, console *ConsoleTransport) (Transport, error) {
	switch opts.Provider {
	case ProviderSMTP:
		if opts.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required for the %s provider", ProviderSMTP)
		}
		return NewSMTPTransport(opts.SMTPHost, opts.SMTPPort, opts.SMTPUser, opts.SMTPPassword, opts.From), nil
	case ProviderSendGrid:
		if opts.SendGridKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is required for the %s provider", ProviderSendGrid)
		}
		return NewSendGridTransport(opts.SendGridKey, opts.From), nil
	case ProviderConsole, "":
		return console, nil
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", opts.Provider)
	}
}

// buildMIME writes msg as a multipart/alternative message.
func buildMIME(from mail.Address, msg *Message) ([]byte, error) {
	body := new(strings.Builder)

	// Write mail header
	_, _ = fmt.Fprintf(body, "From: %s\r\n", from.String())
	_, _ = fmt.Fprintf(body, "To: %s\r\n", joinAddresses(msg.To))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprint(body, "MIME-Version: 1.0\r\n")

	altW := multipart.NewWriter(body)
	_, _ = fmt.Fprintf(body, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", altW.Boundary())

	w, err := altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	if err != nil {
		return nil, fmt.Errorf("create text/plain part: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s\r\n", msg.TextContent)

	if msg.HTMLContent != "" {
		w, err = altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
		if err != nil {
			return nil, fmt.Errorf("create text/html part: %w", err)
		}
		_, _ = fmt.Fprintf(w, "%s\r\n", msg.HTMLContent)
	}
	if err := altW.Close(); err != nil {
		return nil, err
	}
	return []byte(body.String()), nil
}

func joinAddresses(addrs []mail.Address) string {
	toJoin := make([]string, 0, len(addrs))
	for _, a := range addrs {
		toJoin = append(toJoin, a.String())
	}
	return strings.Join(toJoin, ", ")
}

func addresses(addrs []mail.Address) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.Address)
	}
	return out
}
