package mail

import (
	"context"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPTransport sends through an SMTP relay with PLAIN auth.
type SMTPTransport struct {
	addr     string
	auth     smtp.Auth
	from     mail.Address
	sendMail sendMailFunc
}

var _ Transport = (*SMTPTransport)(nil)

// NewSMTPTransport creates an SMTP transport. Auth is skipped when user is empty.
func NewSMTPTransport(host string, port int, user, password string, from mail.Address) *SMTPTransport {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &SMTPTransport{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		auth:     auth,
		from:     from,
		sendMail: smtp.SendMail,
	}
}

func (t *SMTPTransport) Name() string { return ProviderSMTP }

func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := buildMIME(t.from, msg)
	if err != nil {
		return err
	}
	if err := t.sendMail(t.addr, t.auth, t.from.Address, addresses(msg.To), body); err != nil {
		return fmt.Errorf("smtp %s: %w", t.addr, err)
	}
	return nil
}
