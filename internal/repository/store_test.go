package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"duesmanager/internal/model"
	"duesmanager/internal/sheets"
)

func newSQLStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// Each connection to :memory: opens a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return NewGormStore(db)
}

func newSheetsStore(t *testing.T) Store {
	t.Helper()
	return NewSheetsStore(sheets.NewMemory(SheetHeaders()))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// forEachBackend runs the same behaviour checks against every store.
func forEachBackend(t *testing.T, fn func(t *testing.T, s Store)) {
	backends := map[string]func(*testing.T) Store{
		"sql":    newSQLStore,
		"sheets": newSheetsStore,
	}
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			fn(t, open(t))
		})
	}
}

func TestMemberRepository(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		repo := s.Members()

		alice := &model.Member{
			Email:     "alice@example.com",
			Name:      "Alice Smith",
			JoinDate:  date(2024, time.March, 1),
			Birthday:  date(1990, time.July, 14),
			Status:    model.MemberStatusActive,
			TotalPaid: decimal.NewFromInt(70),
			Balance:   decimal.NewFromInt(30),
			Year:      2024,
		}
		bob := &model.Member{
			Email:  "bob@example.com",
			Name:   "Bob Jones",
			Status: model.MemberStatusInactive,
		}
		require.NoError(t, repo.Create(ctx, alice))
		require.NoError(t, repo.Create(ctx, bob))

		got, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", got.Name)
		assert.True(t, got.JoinDate.Equal(alice.JoinDate))
		assert.True(t, got.TotalPaid.Equal(decimal.NewFromInt(70)))
		assert.Equal(t, 2024, got.Year)

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		all, err := repo.List(ctx, MemberFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		active, err := repo.List(ctx, MemberFilter{Status: model.MemberStatusActive})
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "alice@example.com", active[0].Email)

		found, err := repo.List(ctx, MemberFilter{Search: "JONES"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "bob@example.com", found[0].Email)

		alice.Balance = decimal.Zero
		alice.Phone = "07700 900000"
		require.NoError(t, repo.Update(ctx, alice))
		got, err = repo.FindByEmail(ctx, alice.Email)
		require.NoError(t, err)
		assert.True(t, got.Balance.IsZero())
		assert.Equal(t, "07700 900000", got.Phone)

		assert.ErrorIs(t, repo.Update(ctx, &model.Member{Email: "ghost@example.com", Name: "Ghost"}), ErrNotFound)

		require.NoError(t, repo.Delete(ctx, bob.Email))
		assert.ErrorIs(t, repo.Delete(ctx, bob.Email), ErrNotFound)
		all, err = repo.List(ctx, MemberFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestPaymentRepository(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		repo := s.Payments()

		march := &model.Payment{
			MemberEmail: "alice@example.com",
			Amount:      decimal.NewFromInt(70),
			Date:        date(2024, time.March, 5),
			Method:      model.PaymentMethodCash,
			Month:       "March",
			Year:        2024,
			Status:      model.PaymentStatusCompleted,
		}
		pending := &model.Payment{
			MemberEmail: "alice@example.com",
			Amount:      decimal.NewFromInt(10),
			Date:        date(2025, time.January, 2),
			Method:      model.PaymentMethodCard,
			Month:       "January",
			Year:        2025,
			Status:      model.PaymentStatusPending,
		}
		other := &model.Payment{
			MemberEmail: "bob@example.com",
			Amount:      decimal.NewFromInt(120),
			Date:        date(2024, time.April, 1),
			Method:      model.PaymentMethodTransfer,
			Month:       "April",
			Year:        2024,
			Status:      model.PaymentStatusCompleted,
		}
		for _, p := range []*model.Payment{march, pending, other} {
			require.NoError(t, repo.Create(ctx, p))
			assert.NotEqual(t, uuid.Nil, p.ID)
		}

		got, err := repo.FindByID(ctx, march.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.MemberEmail)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(70)))
		assert.Equal(t, model.PaymentMethodCash, got.Method)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)

		mine, err := repo.ListByMember(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		y2024, err := repo.List(ctx, PaymentFilter{Year: 2024})
		require.NoError(t, err)
		assert.Len(t, y2024, 2)

		pend, err := repo.List(ctx, PaymentFilter{Status: model.PaymentStatusPending})
		require.NoError(t, err)
		require.Len(t, pend, 1)
		assert.Equal(t, pending.ID, pend[0].ID)

		pending.Status = model.PaymentStatusCompleted
		require.NoError(t, repo.Update(ctx, pending))
		got, err = repo.FindByID(ctx, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusCompleted, got.Status)

		require.NoError(t, repo.Delete(ctx, other.ID))
		assert.ErrorIs(t, repo.Delete(ctx, other.ID), ErrNotFound)
	})
}

func TestUserRepository(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		repo := s.Users()

		u := &model.User{Email: "admin@example.com", Name: "Admin", PasswordHash: "hash", IsAdmin: true}
		require.NoError(t, repo.Create(ctx, u))

		got, err := repo.FindByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.True(t, got.IsAdmin)
		assert.Equal(t, "hash", got.PasswordHash)

		u.Name = "Club Admin"
		u.IsAdmin = false
		require.NoError(t, repo.Update(ctx, u))
		got, err = repo.FindByEmail(ctx, u.Email)
		require.NoError(t, err)
		assert.Equal(t, "Club Admin", got.Name)
		assert.False(t, got.IsAdmin)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		require.NoError(t, repo.Delete(ctx, u.Email))
		_, err = repo.FindByEmail(ctx, u.Email)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLStoreTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newSQLStore(t)
	assert.True(t, s.Atomic())

	err := s.WithTransaction(ctx, func(ctx context.Context, tx Store) error {
		require.NoError(t, tx.Users().Create(ctx, &model.User{Email: "tx@example.com", Name: "Tx", PasswordHash: "h"}))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = s.Users().FindByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSheetsStoreWritesAreNotRolledBack(t *testing.T) {
	ctx := context.Background()
	s := newSheetsStore(t)
	assert.False(t, s.Atomic())

	err := s.WithTransaction(ctx, func(ctx context.Context, tx Store) error {
		require.NoError(t, tx.Users().Create(ctx, &model.User{Email: "tx@example.com", Name: "Tx", PasswordHash: "h"}))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = s.Users().FindByEmail(ctx, "tx@example.com")
	assert.NoError(t, err)
}

func TestSheetsRowsTolerateHandEditedCells(t *testing.T) {
	ctx := context.Background()
	mem := sheets.NewMemory(SheetHeaders())
	require.NoError(t, mem.Append(ctx, "Members!A1:L", [][]interface{}{
		{"Carol", " Carol@Example.com ", "", "yes", "", "3/1/2024", "", "", "On Leave", "£1,200.50", "n/a", "2024"},
		{"", "", ""},
	}))
	require.NoError(t, mem.Append(ctx, "Payments!A1:H", [][]interface{}{
		{"legacy-7", "carol@example.com", "£10", "05/03/2024", "Cash", "March", "", "completed"},
	}))
	s := NewSheetsStore(mem)

	members, err := s.Members().List(ctx, MemberFilter{})
	require.NoError(t, err)
	require.Len(t, members, 1)
	c := members[0]
	assert.Equal(t, "carol@example.com", c.Email)
	assert.True(t, c.IsAdmin)
	assert.Equal(t, model.MemberStatusOnLeave, c.Status)
	assert.True(t, c.TotalPaid.Equal(decimal.RequireFromString("1200.50")))
	assert.True(t, c.Balance.IsZero())
	assert.Equal(t, date(2024, time.January, 3), c.JoinDate)

	payments, err := s.Payments().List(ctx, PaymentFilter{Year: 2024})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	p := payments[0]
	assert.Equal(t, model.PaymentMethodCash, p.Method)
	assert.Equal(t, 0, p.Year)
	assert.Equal(t, 2024, p.EffectiveYear())

	got, err := s.Payments().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(10)))
}

func TestSheetsPaymentsWithBlankIDAreAddressable(t *testing.T) {
	ctx := context.Background()
	mem := sheets.NewMemory(SheetHeaders())
	require.NoError(t, mem.Append(ctx, "Payments!A1:H", [][]interface{}{
		{"", "dan@example.com", "10", "2024-03-05", "cash", "March", "2024", "completed"},
		{"", "dan@example.com", "20", "2024-04-05", "cash", "April", "2024", "completed"},
		{"", "dan@example.com", "20", "2024-04-05", "cash", "April", "2024", "completed"},
	}))
	s := NewSheetsStore(mem)

	payments, err := s.Payments().ListByMember(ctx, "dan@example.com")
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.NotEqual(t, payments[0].ID, payments[1].ID)

	first := payments[0]
	first.Status = model.PaymentStatusPending
	require.NoError(t, s.Payments().Update(ctx, &first))
	got, err := s.Payments().FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPending, got.Status)

	for _, p := range payments {
		require.NoError(t, s.Payments().Delete(ctx, p.ID))
	}
	payments, err = s.Payments().ListByMember(ctx, "dan@example.com")
	require.NoError(t, err)
	assert.Empty(t, payments)
}
