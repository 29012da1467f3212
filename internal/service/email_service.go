package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	netmail "net/mail"
	"sync"

	"golang.org/x/sync/errgroup"

	"duesmanager/internal/dues"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/mail"
	"duesmanager/internal/metrics"
	"duesmanager/internal/model"
	"duesmanager/internal/repository"
)

// EmailKind selects the template of an outgoing email.
type EmailKind string

const (
	EmailBirthday        EmailKind = mail.TemplateBirthday
	EmailAnniversary     EmailKind = mail.TemplateAnniversary
	EmailPaymentReminder EmailKind = mail.TemplatePaymentReminder
	EmailDuesStatus      EmailKind = mail.TemplateDuesStatus
)

// Valid reports whether k names a template.
func (k EmailKind) Valid() bool {
	switch k {
	case EmailBirthday, EmailAnniversary, EmailPaymentReminder, EmailDuesStatus:
		return true
	}
	return false
}

// SendFailure records one recipient that could not be emailed.
type SendFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// BulkResult counts the outcome of a bulk send.
type BulkResult struct {
	Sent     int           `json:"sent"`
	Failed   int           `json:"failed"`
	Failures []SendFailure `json:"failures"`
}

// EmailService sends templated emails to members.
type EmailService interface {
	Send(ctx context.Context, kind EmailKind, email string) error
	// SendBulk emails every address in emails, or every active member when
	// emails is empty. Reminders to all members skip those with nothing owed.
	SendBulk(ctx context.Context, kind EmailKind, emails []string) (*BulkResult, error)
	// SendCelebrations greets members whose birthday or anniversary is today.
	SendCelebrations(ctx context.Context) (*BulkResult, error)
}

type emailService struct {
	store       repository.Store
	renderer    *mail.Renderer
	transport   mail.Transport
	policy      DuesPolicy
	appName     string
	concurrency int
	logger      *slog.Logger
}

// NewEmailService creates a new email service.
func NewEmailService(
	store repository.Store,
	renderer *mail.Renderer,
	transport mail.Transport,
	policy DuesPolicy,
	appName string,
	concurrency int,
	logger *slog.Logger,
) EmailService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &emailService{
		store:       store,
		renderer:    renderer,
		transport:   transport,
		policy:      policy,
		appName:     appName,
		concurrency: concurrency,
		logger:      logger,
	}
}

// compose builds the rendered message of kind for member.
func (s *emailService) compose(ctx context.Context, kind EmailKind, member *model.Member) (*mail.Message, error) {
	year := s.policy.now().Year()
	data := map[string]interface{}{
		"Name":  member.Name,
		"Email": member.Email,
		"Year":  year,
	}
	var subject string
	switch kind {
	case EmailBirthday:
		subject = fmt.Sprintf("Happy birthday, %s!", member.Name)
	case EmailAnniversary:
		subject = fmt.Sprintf("Happy anniversary, %s!", member.Name)
	case EmailPaymentReminder, EmailDuesStatus:
		payments, err := s.store.Payments().ListByMember(ctx, member.Email)
		if err != nil {
			return nil, fmt.Errorf("list payments: %w", err)
		}
		sum := dues.Summarize(member.JoinDate, s.policy.MonthlyDue, payments, year)
		data["Outstanding"] = s.policy.Money(sum.Outstanding)
		data["PaidInYear"] = s.policy.Money(sum.PaidInYear)
		data["Carryover"] = s.policy.Money(sum.Carryover)
		data["Months"] = dues.YearStatus(member.JoinDate, s.policy.MonthlyDue, payments, year)
		if kind == EmailPaymentReminder {
			subject = fmt.Sprintf("Dues reminder for %d", year)
		} else {
			subject = fmt.Sprintf("Your %d dues status", year)
		}
	default:
		return nil, apperrors.ErrInvalidKind
	}

	msg := &mail.Message{
		To:           []netmail.Address{{Name: member.Name, Address: member.Email}},
		Subject:      "[" + s.appName + "] " + subject,
		TemplateName: string(kind),
		TemplateData: data,
	}
	if err := s.renderer.Render(msg); err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	return msg, nil
}

// deliver hands msg to the transport. Provider detail is logged; callers get
// ErrSendFailed.
func (s *emailService) deliver(ctx context.Context, msg *mail.Message) error {
	err := s.transport.Send(ctx, msg)
	metrics.ObserveEmail(s.transport.Name(), msg.TemplateName, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "email send failed",
			slog.String("provider", s.transport.Name()),
			slog.String("template", msg.TemplateName),
			slog.String("to", msg.To[0].Address),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %s", apperrors.ErrSendFailed, msg.To[0].Address)
	}
	return nil
}

func (s *emailService) sendTo(ctx context.Context, kind EmailKind, member *model.Member) error {
	msg, err := s.compose(ctx, kind, member)
	if err != nil {
		return err
	}
	return s.deliver(ctx, msg)
}

func (s *emailService) Send(ctx context.Context, kind EmailKind, email string) error {
	if !kind.Valid() {
		return apperrors.ErrInvalidKind
	}
	member, err := s.store.Members().FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("get member %s: %w", email, err)
	}
	return s.sendTo(ctx, kind, member)
}

func (s *emailService) SendBulk(ctx context.Context, kind EmailKind, emails []string) (*BulkResult, error) {
	if !kind.Valid() {
		return nil, apperrors.ErrInvalidKind
	}

	members, err := s.store.Members().List(ctx, repository.MemberFilter{})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	byEmail := make(map[string]*model.Member, len(members))
	for i := range members {
		byEmail[members[i].Email] = &members[i]
	}

	type recipient struct {
		email  string
		member *model.Member
	}
	var recipients []recipient
	if len(emails) > 0 {
		seen := make(map[string]bool, len(emails))
		for _, e := range emails {
			e = normalizeEmail(e)
			if e == "" || seen[e] {
				continue
			}
			seen[e] = true
			recipients = append(recipients, recipient{email: e, member: byEmail[e]})
		}
	} else {
		var byMember map[string][]model.Payment
		if kind == EmailPaymentReminder {
			payments, err := s.store.Payments().List(ctx, repository.PaymentFilter{})
			if err != nil {
				return nil, fmt.Errorf("list payments: %w", err)
			}
			byMember = groupByMember(payments)
		}
		year := s.policy.now().Year()
		for i := range members {
			m := &members[i]
			if m.Status != model.MemberStatusActive {
				continue
			}
			// Stored balances lag behind year rollovers.
			if kind == EmailPaymentReminder &&
				!dues.Outstanding(m.JoinDate, s.policy.MonthlyDue, byMember[m.Email], year).IsPositive() {
				continue
			}
			recipients = append(recipients, recipient{email: m.Email, member: m})
		}
	}
	if len(recipients) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	result := &BulkResult{Failures: []SendFailure{}}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, r := range recipients {
		g.Go(func() error {
			var err error
			if r.member == nil {
				err = fmt.Errorf("get member %s: %w", r.email, repository.ErrNotFound)
			} else {
				err = s.sendTo(gctx, kind, r.member)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Failures = append(result.Failures, SendFailure{Email: r.email, Error: failureReason(err)})
				return nil
			}
			result.Sent++
			return nil
		})
	}
	_ = g.Wait()

	s.logger.InfoContext(ctx, "bulk email finished",
		slog.String("kind", string(kind)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

// failureReason is the client-facing text for a per-recipient failure.
func failureReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "member not found"
	case errors.Is(err, apperrors.ErrSendFailed):
		return apperrors.ErrSendFailed.Error()
	default:
		return "internal error"
	}
}

func (s *emailService) SendCelebrations(ctx context.Context) (*BulkResult, error) {
	members, err := s.store.Members().List(ctx, repository.MemberFilter{Status: model.MemberStatusActive})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	byEmail := make(map[string]*model.Member, len(members))
	for i := range members {
		byEmail[members[i].Email] = &members[i]
	}

	result := &BulkResult{Failures: []SendFailure{}}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, c := range upcomingCelebrations(members, s.policy.now(), 0) {
		kind := EmailBirthday
		if c.Kind == CelebrationAnniversary {
			kind = EmailAnniversary
		}
		member := byEmail[c.Email]
		g.Go(func() error {
			err := s.sendTo(gctx, kind, member)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Failures = append(result.Failures, SendFailure{Email: member.Email, Error: failureReason(err)})
				return nil
			}
			result.Sent++
			return nil
		})
	}
	_ = g.Wait()
	return result, nil
}
