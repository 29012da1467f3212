package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"duesmanager/internal/sheets"
)

// Sheet names and widths of the spreadsheet system of record.
const (
	MembersSheet  = "Members"
	PaymentsSheet = "Payments"
	UsersSheet    = "Users"

	memberCols  = 12 // A:L
	paymentCols = 8  // A:H
	userCols    = 4  // A:D
)

// SheetHeaders returns the header row of each sheet, for seeding an empty
// spreadsheet or an in-memory one.
func SheetHeaders() map[string][]interface{} {
	return map[string][]interface{}{
		MembersSheet: {"Name", "Email", "PasswordHash", "IsAdmin", "Phone", "JoinDate",
			"Birthday", "Anniversary", "Status", "TotalPaid", "Balance", "Year"},
		PaymentsSheet: {"ID", "MemberEmail", "Amount", "Date", "Method", "Month", "Year", "Status"},
		UsersSheet:    {"Email", "PasswordHash", "Name", "IsAdmin"},
	}
}

type sheetsStore struct {
	api sheets.ValuesAPI
}

// NewSheetsStore creates a Store over a spreadsheet. Writes are independent
// remote calls, so WithTransaction offers no rollback.
func NewSheetsStore(api sheets.ValuesAPI) Store {
	return &sheetsStore{api: api}
}

func (s *sheetsStore) Members() MemberRepository {
	return &sheetMemberRepository{t: table{api: s.api, name: MembersSheet, cols: memberCols}}
}

func (s *sheetsStore) Payments() PaymentRepository {
	return &sheetPaymentRepository{t: table{api: s.api, name: PaymentsSheet, cols: paymentCols}}
}

func (s *sheetsStore) Users() UserRepository {
	return &sheetUserRepository{t: table{api: s.api, name: UsersSheet, cols: userCols}}
}

func (s *sheetsStore) Atomic() bool { return false }

func (s *sheetsStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return fn(ctx, s)
}

// table is one sheet with a header row and positional columns.
type table struct {
	api  sheets.ValuesAPI
	name string
	cols int
}

// rows fetches every data row. Index i is spreadsheet row i+2.
func (t table) rows(ctx context.Context) ([][]interface{}, error) {
	rows, err := t.api.Get(ctx, sheets.Range(t.name, 0, t.cols-1, 2, 0))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.name, err)
	}
	return rows, nil
}

// find returns the spreadsheet row number and values of the first row whose
// key column matches. Keys compare case-insensitively.
func (t table) find(ctx context.Context, col int, key string) (int, []interface{}, error) {
	rows, err := t.rows(ctx)
	if err != nil {
		return 0, nil, err
	}
	for i, row := range rows {
		if strings.EqualFold(strings.TrimSpace(sheets.Cell(row, col)), key) {
			return i + 2, row, nil
		}
	}
	return 0, nil, ErrNotFound
}

func (t table) append(ctx context.Context, row []interface{}) error {
	if err := t.api.Append(ctx, sheets.Range(t.name, 0, t.cols-1, 1, 0), [][]interface{}{row}); err != nil {
		return fmt.Errorf("append %s: %w", t.name, err)
	}
	return nil
}

func (t table) update(ctx context.Context, rowNum int, row []interface{}) error {
	if err := t.api.Update(ctx, sheets.Range(t.name, 0, t.cols-1, rowNum, rowNum), [][]interface{}{row}); err != nil {
		return fmt.Errorf("update %s row %d: %w", t.name, rowNum, err)
	}
	return nil
}

func (t table) delete(ctx context.Context, rowNum int) error {
	if err := t.api.DeleteRow(ctx, t.name, rowNum); err != nil {
		return fmt.Errorf("delete %s row %d: %w", t.name, rowNum, err)
	}
	return nil
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
