package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"duesmanager/internal/cache"
	"duesmanager/internal/dues"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/model"
	"duesmanager/internal/repository"
)

// PartialWriteWarning is reported when a payment was written but the member
// totals could not be updated afterwards.
const PartialWriteWarning = "payment saved but member totals could not be updated; they will be corrected on the next change"

// PaymentInput holds the fields of a new payment.
type PaymentInput struct {
	MemberEmail string
	Amount      decimal.Decimal
	Date        time.Time
	Method      model.PaymentMethod
	Month       string
	Year        int
	Status      model.PaymentStatus
}

// PaymentResult is the outcome of a payment write.
type PaymentResult struct {
	Payment *model.Payment `json:"payment"`
	Member  *model.Member  `json:"member,omitempty"`
	Warning string         `json:"warning,omitempty"`
}

// PaymentService handles dues payment operations.
type PaymentService interface {
	Record(ctx context.Context, in PaymentInput) (*PaymentResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) (*PaymentResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*PaymentResult, error)
	List(ctx context.Context, filter repository.PaymentFilter) ([]model.Payment, error)
}

type paymentService struct {
	store  repository.Store
	cache  *cache.Client
	policy DuesPolicy
	logger *slog.Logger
	// Mutex map for per-member locking
	memberMutexes sync.Map
}

// NewPaymentService creates a new payment service.
func NewPaymentService(store repository.Store, cache *cache.Client, policy DuesPolicy, logger *slog.Logger) PaymentService {
	return &paymentService{
		store:  store,
		cache:  cache,
		policy: policy,
		logger: logger,
	}
}

// getMutex returns a mutex for a specific member.
func (s *paymentService) getMutex(email string) *sync.Mutex {
	value, _ := s.memberMutexes.LoadOrStore(email, &sync.Mutex{})
	return value.(*sync.Mutex)
}

func (s *paymentService) normalize(in PaymentInput) (*model.Payment, error) {
	email := normalizeEmail(in.MemberEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: member email is required", apperrors.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if !in.Method.Valid() {
		return nil, fmt.Errorf("%w: payment method %q", apperrors.ErrInvalidInput, in.Method)
	}
	status := in.Status
	if status == "" {
		status = model.PaymentStatusCompleted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: payment status %q", apperrors.ErrInvalidInput, status)
	}

	date := in.Date
	if date.IsZero() {
		date = s.policy.now()
	}
	month := date.Month()
	if in.Month != "" {
		if month = dues.ParseMonth(in.Month); month == 0 {
			return nil, fmt.Errorf("%w: month %q", apperrors.ErrInvalidInput, in.Month)
		}
	}
	year := in.Year
	if year == 0 {
		year = date.Year()
	}

	return &model.Payment{
		ID:          uuid.New(),
		MemberEmail: email,
		Amount:      in.Amount,
		Date:        date,
		Method:      in.Method,
		Month:       dues.MonthName(month),
		Year:        year,
		Status:      status,
	}, nil
}

// Record stores a payment and recomputes the member's totals. On a store
// without rollback, a failed member update after the payment write is
// returned as a warning rather than an error.
func (s *paymentService) Record(ctx context.Context, in PaymentInput) (*PaymentResult, error) {
	payment, err := s.normalize(in)
	if err != nil {
		return nil, err
	}

	mu := s.getMutex(payment.MemberEmail)
	mu.Lock()
	defer mu.Unlock()

	if _, err := s.store.Members().FindByEmail(ctx, payment.MemberEmail); err != nil {
		return nil, fmt.Errorf("get member %s: %w", payment.MemberEmail, err)
	}

	return s.write(ctx, payment.MemberEmail, payment, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		return nil
	})
}

func (s *paymentService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) (*PaymentResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: payment status %q", apperrors.ErrInvalidInput, status)
	}
	payment, err := s.store.Payments().FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", id, err)
	}

	mu := s.getMutex(payment.MemberEmail)
	mu.Lock()
	defer mu.Unlock()

	payment.Status = status
	return s.write(ctx, payment.MemberEmail, payment, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Payments().Update(ctx, payment); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
		return nil
	})
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) (*PaymentResult, error) {
	payment, err := s.store.Payments().FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", id, err)
	}

	mu := s.getMutex(payment.MemberEmail)
	mu.Lock()
	defer mu.Unlock()

	return s.write(ctx, payment.MemberEmail, payment, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Payments().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		return nil
	})
}

// write runs op and then refreshes the member's totals in one unit of work.
func (s *paymentService) write(ctx context.Context, email string, payment *model.Payment, op func(context.Context, repository.Store) error) (*PaymentResult, error) {
	var member *model.Member
	var syncErr error
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := op(ctx, tx); err != nil {
			return err
		}
		member, syncErr = s.refreshMember(ctx, tx, email)
		if syncErr != nil && s.store.Atomic() {
			return syncErr
		}
		return nil
	})
	_ = s.cache.Delete(ctx, cache.MemberKey(email))
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{Payment: payment, Member: member}
	if syncErr != nil {
		s.logger.WarnContext(ctx, "member totals not updated after payment write",
			slog.String("member", email),
			slog.String("payment", payment.ID.String()),
			slog.Any("error", syncErr),
		)
		result.Warning = PartialWriteWarning
	}
	return result, nil
}

// refreshMember recomputes and stores the member's totals. A payment for an
// email with no member row leaves nothing to refresh.
func (s *paymentService) refreshMember(ctx context.Context, tx repository.Store, email string) (*model.Member, error) {
	member, err := tx.Members().FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	payments, err := tx.Payments().ListByMember(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	s.policy.apply(member, payments)
	if err := tx.Members().Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	return member, nil
}

func (s *paymentService) List(ctx context.Context, filter repository.PaymentFilter) ([]model.Payment, error) {
	filter.MemberEmail = normalizeEmail(filter.MemberEmail)
	payments, err := s.store.Payments().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
