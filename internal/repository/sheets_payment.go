package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"duesmanager/internal/model"
	"duesmanager/internal/sheets"
)

type sheetPaymentRepository struct {
	t table
}

// paymentID maps an ID cell to a UUID. Hand-entered IDs that are not UUIDs
// get a stable name-based UUID so they can still be addressed.
func paymentID(raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("payment:"+raw))
}

// rowID is the ID a payments row is addressed by. Rows with a blank ID cell
// are keyed on their contents; the first write stores a real ID.
func rowID(row []interface{}) uuid.UUID {
	if raw := sheets.Cell(row, 0); strings.TrimSpace(raw) != "" {
		return paymentID(raw)
	}
	cells := make([]string, 0, len(row))
	for i := 1; i < 8; i++ {
		cells = append(cells, strings.TrimSpace(sheets.Cell(row, i)))
	}
	return paymentID("row:" + strings.Join(cells, "|"))
}

func paymentToRow(p *model.Payment) []interface{} {
	year := ""
	if p.Year != 0 {
		year = strconv.Itoa(p.Year)
	}
	return []interface{}{
		p.ID.String(),
		p.MemberEmail,
		sheets.FormatAmount(p.Amount),
		sheets.FormatDate(p.Date),
		string(p.Method),
		p.Month,
		year,
		string(p.Status),
	}
}

func paymentFromRow(row []interface{}) model.Payment {
	status := model.PaymentStatus(strings.ToLower(strings.TrimSpace(sheets.Cell(row, 7))))
	return model.Payment{
		ID:          rowID(row),
		MemberEmail: strings.ToLower(strings.TrimSpace(sheets.Cell(row, 1))),
		Amount:      sheets.ParseAmount(sheets.Cell(row, 2)),
		Date:        sheets.ParseDate(sheets.Cell(row, 3)),
		Method:      model.PaymentMethod(strings.ToLower(strings.TrimSpace(sheets.Cell(row, 4)))),
		Month:       strings.TrimSpace(sheets.Cell(row, 5)),
		Year:        parseInt(sheets.Cell(row, 6)),
		Status:      status,
	}
}

// findByID scans for the row holding id.
func (r *sheetPaymentRepository) findByID(ctx context.Context, id uuid.UUID) (int, []interface{}, error) {
	rows, err := r.t.rows(ctx)
	if err != nil {
		return 0, nil, err
	}
	for i, row := range rows {
		if rowID(row) == id {
			return i + 2, row, nil
		}
	}
	return 0, nil, ErrNotFound
}

func (r *sheetPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	return r.t.append(ctx, paymentToRow(payment))
}

func (r *sheetPaymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	rowNum, _, err := r.findByID(ctx, payment.ID)
	if err != nil {
		return err
	}
	return r.t.update(ctx, rowNum, paymentToRow(payment))
}

func (r *sheetPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowNum, _, err := r.findByID(ctx, id)
	if err != nil {
		return err
	}
	return r.t.delete(ctx, rowNum)
}

func (r *sheetPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	_, row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := paymentFromRow(row)
	return &p, nil
}

func (r *sheetPaymentRepository) ListByMember(ctx context.Context, email string) ([]model.Payment, error) {
	return r.List(ctx, PaymentFilter{MemberEmail: email})
}

func (r *sheetPaymentRepository) List(ctx context.Context, filter PaymentFilter) ([]model.Payment, error) {
	rows, err := r.t.rows(ctx)
	if err != nil {
		return nil, err
	}
	payments := make([]model.Payment, 0, len(rows))
	for _, row := range rows {
		if sheets.Cell(row, 0) == "" && sheets.Cell(row, 1) == "" {
			continue
		}
		p := paymentFromRow(row)
		if filter.MemberEmail != "" && !strings.EqualFold(p.MemberEmail, filter.MemberEmail) {
			continue
		}
		if filter.Year != 0 && p.EffectiveYear() != filter.Year {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		payments = append(payments, p)
	}
	return payments, nil
}
