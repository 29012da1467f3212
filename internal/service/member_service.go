package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"duesmanager/internal/cache"
	"duesmanager/internal/dues"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/model"
	"duesmanager/internal/repository"
)

const memberCacheTTL = 5 * time.Minute

// MemberInput holds the fields of a new member.
type MemberInput struct {
	Email       string
	Name        string
	Password    string
	IsAdmin     bool
	Phone       string
	JoinDate    time.Time
	Birthday    time.Time
	Anniversary time.Time
	Status      model.MemberStatus
}

// MemberUpdate holds the fields to change on a member. Nil fields are kept.
type MemberUpdate struct {
	Name        *string
	Password    *string
	IsAdmin     *bool
	Phone       *string
	JoinDate    *time.Time
	Birthday    *time.Time
	Anniversary *time.Time
	Status      *model.MemberStatus
}

// MemberProfile is a member together with their payment history.
type MemberProfile struct {
	Member   *model.Member   `json:"member"`
	Payments []model.Payment `json:"payments"`
	Summary  dues.Summary    `json:"summary"`
}

// StatusView is the twelve-month dues view of one member.
type StatusView struct {
	Email   string              `json:"email"`
	Name    string              `json:"name"`
	Year    int                 `json:"year"`
	Months  [12]dues.MonthEntry `json:"months"`
	Summary dues.Summary        `json:"summary"`
}

// MemberSummary is one dashboard row.
type MemberSummary struct {
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Status model.MemberStatus `json:"status"`
	dues.Summary
}

// Dashboard holds the admin overview for one year.
type Dashboard struct {
	Year             int             `json:"year"`
	MonthlyDue       decimal.Decimal `json:"monthly_due"`
	TotalMembers     int             `json:"total_members"`
	ActiveMembers    int             `json:"active_members"`
	FullyPaid        int             `json:"fully_paid"`
	TotalRequired    decimal.Decimal `json:"total_required"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	Members          []MemberSummary `json:"members"`
}

// ConsistencyReport lists records whose counterpart is missing.
type ConsistencyReport struct {
	UsersWithoutMembers    []string `json:"users_without_members"`
	MembersWithoutUsers    []string `json:"members_without_users"`
	PaymentsWithoutMembers []string `json:"payments_without_members"`
}

// Consistent reports whether nothing has drifted.
func (r *ConsistencyReport) Consistent() bool {
	return len(r.UsersWithoutMembers) == 0 && len(r.MembersWithoutUsers) == 0 && len(r.PaymentsWithoutMembers) == 0
}

// MemberService handles member operations.
type MemberService interface {
	List(ctx context.Context, filter repository.MemberFilter) ([]model.Member, error)
	Get(ctx context.Context, email string) (*model.Member, error)
	Profile(ctx context.Context, email string) (*MemberProfile, error)
	Create(ctx context.Context, in MemberInput) (*model.Member, error)
	Update(ctx context.Context, email string, in MemberUpdate) (*model.Member, error)
	Delete(ctx context.Context, email string) error
	Status(ctx context.Context, email string, year int) (*StatusView, error)
	Dashboard(ctx context.Context, year int) (*Dashboard, error)
	Celebrations(ctx context.Context, days int) ([]Celebration, error)
	Consistency(ctx context.Context) (*ConsistencyReport, error)
	Import(ctx context.Context, members []model.Member) (int, error)
}

type memberService struct {
	store  repository.Store
	cache  *cache.Client
	policy DuesPolicy
	logger *slog.Logger
}

// NewMemberService creates a new member service.
func NewMemberService(store repository.Store, cache *cache.Client, policy DuesPolicy, logger *slog.Logger) MemberService {
	return &memberService{
		store:  store,
		cache:  cache,
		policy: policy,
		logger: logger,
	}
}

func (s *memberService) List(ctx context.Context, filter repository.MemberFilter) ([]model.Member, error) {
	members, err := s.store.Members().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// Get retrieves a member by email with caching.
func (s *memberService) Get(ctx context.Context, email string) (*model.Member, error) {
	email = normalizeEmail(email)

	// Try cache first
	var cached model.Member
	if s.cache.GetJSON(ctx, cache.MemberKey(email), &cached) {
		return &cached, nil
	}

	member, err := s.store.Members().FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get member %s: %w", email, err)
	}

	_ = s.cache.SetJSON(ctx, cache.MemberKey(email), member, memberCacheTTL)
	return member, nil
}

func (s *memberService) Profile(ctx context.Context, email string) (*MemberProfile, error) {
	member, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	payments, err := s.store.Payments().ListByMember(ctx, member.Email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return &MemberProfile{
		Member:   member,
		Payments: payments,
		Summary:  dues.Summarize(member.JoinDate, s.policy.MonthlyDue, payments, s.policy.now().Year()),
	}, nil
}

// Create adds a member. A password also creates the matching login record
// when none exists.
func (s *memberService) Create(ctx context.Context, in MemberInput) (*model.Member, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: name and email are required", apperrors.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = model.MemberStatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", apperrors.ErrInvalidInput, status)
	}

	member := &model.Member{
		Email:       email,
		Name:        in.Name,
		IsAdmin:     in.IsAdmin,
		Phone:       in.Phone,
		JoinDate:    in.JoinDate,
		Birthday:    in.Birthday,
		Anniversary: in.Anniversary,
		Status:      status,
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		member.PasswordHash = hash
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.Members().FindByEmail(ctx, email); err == nil {
			return apperrors.ErrEmailExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("check member existence: %w", err)
		}

		// Payments may already reference this email.
		payments, err := tx.Payments().ListByMember(ctx, email)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		s.policy.apply(member, payments)

		if err := tx.Members().Create(ctx, member); err != nil {
			return fmt.Errorf("create member: %w", err)
		}

		if member.PasswordHash == "" {
			return nil
		}
		if _, err := tx.Users().FindByEmail(ctx, email); err == nil {
			return nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("check user existence: %w", err)
		}
		user := &model.User{Email: email, Name: member.Name, PasswordHash: member.PasswordHash, IsAdmin: member.IsAdmin}
		if err := tx.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.MemberKey(email))
	s.logger.InfoContext(ctx, "member created", slog.String("email", email))
	return member, nil
}

func (s *memberService) Update(ctx context.Context, email string, in MemberUpdate) (*model.Member, error) {
	email = normalizeEmail(email)
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: status %q", apperrors.ErrInvalidInput, *in.Status)
	}
	var hash string
	if in.Password != nil && *in.Password != "" {
		var err error
		if hash, err = hashPassword(*in.Password); err != nil {
			return nil, err
		}
	}

	var member *model.Member
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		var err error
		member, err = tx.Members().FindByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("get member %s: %w", email, err)
		}

		if in.Name != nil && *in.Name != "" {
			member.Name = *in.Name
		}
		if in.IsAdmin != nil {
			member.IsAdmin = *in.IsAdmin
		}
		if in.Phone != nil {
			member.Phone = *in.Phone
		}
		if in.JoinDate != nil {
			member.JoinDate = *in.JoinDate
		}
		if in.Birthday != nil {
			member.Birthday = *in.Birthday
		}
		if in.Anniversary != nil {
			member.Anniversary = *in.Anniversary
		}
		if in.Status != nil {
			member.Status = *in.Status
		}
		if hash != "" {
			member.PasswordHash = hash
		}

		payments, err := tx.Payments().ListByMember(ctx, email)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		s.policy.apply(member, payments)
		if err := tx.Members().Update(ctx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}

		return syncUser(ctx, tx, member, hash != "")
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.MemberKey(email))
	return member, nil
}

// syncUser mirrors name, admin flag and optionally the password hash onto
// the member's login record, if there is one.
func syncUser(ctx context.Context, tx repository.Store, member *model.Member, withHash bool) error {
	user, err := tx.Users().FindByEmail(ctx, member.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	user.Name = member.Name
	user.IsAdmin = member.IsAdmin
	if withHash {
		user.PasswordHash = member.PasswordHash
	}
	if err := tx.Users().Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a member and their payments. The login record is kept and
// shows up in the consistency report.
func (s *memberService) Delete(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.Members().FindByEmail(ctx, email); err != nil {
			return fmt.Errorf("get member %s: %w", email, err)
		}
		payments, err := tx.Payments().ListByMember(ctx, email)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		for _, p := range payments {
			if err := tx.Payments().Delete(ctx, p.ID); err != nil {
				return fmt.Errorf("delete payment %s: %w", p.ID, err)
			}
		}
		if err := tx.Members().Delete(ctx, email); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.MemberKey(email))
	s.logger.InfoContext(ctx, "member deleted", slog.String("email", email))
	return nil
}

func (s *memberService) Status(ctx context.Context, email string, year int) (*StatusView, error) {
	member, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.policy.now().Year()
	}
	payments, err := s.store.Payments().ListByMember(ctx, member.Email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return &StatusView{
		Email:   member.Email,
		Name:    member.Name,
		Year:    year,
		Months:  dues.YearStatus(member.JoinDate, s.policy.MonthlyDue, payments, year),
		Summary: dues.Summarize(member.JoinDate, s.policy.MonthlyDue, payments, year),
	}, nil
}

// Dashboard summarizes every member for year. Inactive members are listed
// but left out of the money totals.
func (s *memberService) Dashboard(ctx context.Context, year int) (*Dashboard, error) {
	if year == 0 {
		year = s.policy.now().Year()
	}
	members, err := s.store.Members().List(ctx, repository.MemberFilter{})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	payments, err := s.store.Payments().List(ctx, repository.PaymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	byMember := groupByMember(payments)

	d := &Dashboard{
		Year:             year,
		MonthlyDue:       s.policy.MonthlyDue,
		TotalMembers:     len(members),
		TotalRequired:    decimal.Zero,
		TotalCollected:   decimal.Zero,
		TotalOutstanding: decimal.Zero,
		Members:          make([]MemberSummary, 0, len(members)),
	}
	for _, m := range members {
		sum := dues.Summarize(m.JoinDate, s.policy.MonthlyDue, byMember[m.Email], year)
		d.Members = append(d.Members, MemberSummary{Email: m.Email, Name: m.Name, Status: m.Status, Summary: sum})
		if m.Status != model.MemberStatusActive {
			continue
		}
		d.ActiveMembers++
		d.TotalRequired = d.TotalRequired.Add(sum.Required)
		d.TotalCollected = d.TotalCollected.Add(sum.PaidInYear)
		d.TotalOutstanding = d.TotalOutstanding.Add(sum.Outstanding)
		if sum.Outstanding.IsZero() {
			d.FullyPaid++
		}
	}
	sort.SliceStable(d.Members, func(i, j int) bool { return d.Members[i].Name < d.Members[j].Name })
	return d, nil
}

func (s *memberService) Celebrations(ctx context.Context, days int) ([]Celebration, error) {
	members, err := s.store.Members().List(ctx, repository.MemberFilter{Status: model.MemberStatusActive})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return upcomingCelebrations(members, s.policy.now(), days), nil
}

func (s *memberService) Consistency(ctx context.Context) (*ConsistencyReport, error) {
	members, err := s.store.Members().List(ctx, repository.MemberFilter{})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	payments, err := s.store.Payments().List(ctx, repository.PaymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[normalizeEmail(m.Email)] = true
	}
	userSet := make(map[string]bool, len(users))
	for _, u := range users {
		userSet[normalizeEmail(u.Email)] = true
	}

	report := &ConsistencyReport{
		UsersWithoutMembers:    []string{},
		MembersWithoutUsers:    []string{},
		PaymentsWithoutMembers: []string{},
	}
	for email := range userSet {
		if !memberSet[email] {
			report.UsersWithoutMembers = append(report.UsersWithoutMembers, email)
		}
	}
	for email := range memberSet {
		if !userSet[email] {
			report.MembersWithoutUsers = append(report.MembersWithoutUsers, email)
		}
	}
	for _, p := range payments {
		if !memberSet[normalizeEmail(p.MemberEmail)] {
			report.PaymentsWithoutMembers = append(report.PaymentsWithoutMembers, p.ID.String())
		}
	}
	sort.Strings(report.UsersWithoutMembers)
	sort.Strings(report.MembersWithoutUsers)
	sort.Strings(report.PaymentsWithoutMembers)
	return report, nil
}

// Import creates or updates members from external data. Existing members
// keep their password hash and get their totals recomputed.
func (s *memberService) Import(ctx context.Context, members []model.Member) (int, error) {
	count := 0
	for _, m := range members {
		m.Email = normalizeEmail(m.Email)
		if m.Email == "" {
			continue
		}
		if m.Status == "" {
			m.Status = model.MemberStatusActive
		}

		existing, err := s.store.Members().FindByEmail(ctx, m.Email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return count, fmt.Errorf("import member %s: %w", m.Email, err)
		}
		payments, err := s.store.Payments().ListByMember(ctx, m.Email)
		if err != nil {
			return count, fmt.Errorf("import member %s: %w", m.Email, err)
		}

		if existing != nil {
			// Update existing member with new data
			existing.Name = m.Name
			existing.Phone = m.Phone
			existing.JoinDate = m.JoinDate
			existing.Birthday = m.Birthday
			existing.Anniversary = m.Anniversary
			existing.Status = m.Status
			s.policy.apply(existing, payments)
			if err := s.store.Members().Update(ctx, existing); err != nil {
				return count, fmt.Errorf("update member %s: %w", m.Email, err)
			}
		} else {
			s.policy.apply(&m, payments)
			if err := s.store.Members().Create(ctx, &m); err != nil {
				return count, fmt.Errorf("create member %s: %w", m.Email, err)
			}
		}

		// Invalidate cache
		_ = s.cache.Delete(ctx, cache.MemberKey(m.Email))
		count++
	}
	return count, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
