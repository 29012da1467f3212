package mail

import (
	"context"
	"log/slog"
	"net/mail"
	"sync"
)

// ConsoleTransport logs messages instead of sending them and keeps a copy of
// each one. It is the development default and the capture sink in tests.
type ConsoleTransport struct {
	from   mail.Address
	logger *slog.Logger

	mu   sync.Mutex
	sent []Message
}

var _ Transport = (*ConsoleTransport)(nil)

// NewConsoleTransport creates a console transport. A nil logger discards output.
func NewConsoleTransport(from mail.Address, logger *slog.Logger) *ConsoleTransport {
	return &ConsoleTransport{from: from, logger: logger}
}

func (t *ConsoleTransport) Name() string { return ProviderConsole }

func (t *ConsoleTransport) Send(ctx context.Context, msg *Message) error {
	body, err := buildMIME(t.from, msg)
	if err != nil {
		return err
	}
	if t.logger != nil {
		t.logger.InfoContext(ctx, "email",
			slog.String("to", joinAddresses(msg.To)),
			slog.String("subject", msg.Subject),
			slog.String("template", msg.TemplateName),
			slog.String("mime", string(body)),
		)
	}
	t.mu.Lock()
	t.sent = append(t.sent, *msg)
	t.mu.Unlock()
	return nil
}

// Sent returns a copy of every message sent so far.
func (t *ConsoleTransport) Sent() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.sent))
	copy(out, t.sent)
	return out
}

// Reset forgets the sent messages.
func (t *ConsoleTransport) Reset() {
	t.mu.Lock()
	t.sent = nil
	t.mu.Unlock()
}
