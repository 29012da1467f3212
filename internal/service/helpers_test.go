package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"duesmanager/internal/model"
	"duesmanager/internal/repository"
	"duesmanager/internal/sheets"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func testPolicy() DuesPolicy {
	return DuesPolicy{
		MonthlyDue: decimal.NewFromInt(10),
		Currency:   "£",
		Now:        func() time.Time { return fixedNow },
	}
}

func newSheetsStore() repository.Store {
	return repository.NewSheetsStore(sheets.NewMemory(repository.SheetHeaders()))
}

func newSQLStore(t *testing.T) repository.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// Each connection to :memory: opens a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repository.Migrate(db))
	return repository.NewGormStore(db)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// failingValues rejects writes to one sheet, like a spreadsheet API quota error.
type failingValues struct {
	sheets.ValuesAPI
	sheet string
}

func (f *failingValues) Update(ctx context.Context, rng string, rows [][]interface{}) error {
	if strings.HasPrefix(rng, f.sheet+"!") {
		return errors.New("googleapi: Error 429: quota exceeded")
	}
	return f.ValuesAPI.Update(ctx, rng, rows)
}

// failingMemberUpdates wraps a store so member updates always fail.
type failingMemberUpdates struct {
	repository.Store
}

type failingMembers struct {
	repository.MemberRepository
}

func (failingMembers) Update(context.Context, *model.Member) error {
	return errors.New("disk full")
}

func (s failingMemberUpdates) Members() repository.MemberRepository {
	return failingMembers{s.Store.Members()}
}

func (s failingMemberUpdates) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	return s.Store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		return fn(ctx, failingMemberUpdates{tx})
	})
}

func seedMember(t *testing.T, store repository.Store, m model.Member) {
	t.Helper()
	if m.Status == "" {
		m.Status = model.MemberStatusActive
	}
	require.NoError(t, store.Members().Create(context.Background(), &m))
}
