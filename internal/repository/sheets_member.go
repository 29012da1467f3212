package repository

import (
	"context"
	"strconv"
	"strings"

	"duesmanager/internal/model"
	"duesmanager/internal/sheets"
)

type sheetMemberRepository struct {
	t table
}

const memberEmailCol = 1

func memberToRow(m *model.Member) []interface{} {
	year := ""
	if m.Year != 0 {
		year = strconv.Itoa(m.Year)
	}
	return []interface{}{
		m.Name,
		m.Email,
		m.PasswordHash,
		sheets.FormatBool(m.IsAdmin),
		m.Phone,
		sheets.FormatDate(m.JoinDate),
		sheets.FormatDate(m.Birthday),
		sheets.FormatDate(m.Anniversary),
		string(m.Status),
		sheets.FormatAmount(m.TotalPaid),
		sheets.FormatAmount(m.Balance),
		year,
	}
}

func memberFromRow(row []interface{}) model.Member {
	return model.Member{
		Name:         strings.TrimSpace(sheets.Cell(row, 0)),
		Email:        strings.ToLower(strings.TrimSpace(sheets.Cell(row, 1))),
		PasswordHash: sheets.Cell(row, 2),
		IsAdmin:      sheets.ParseBool(sheets.Cell(row, 3)),
		Phone:        strings.TrimSpace(sheets.Cell(row, 4)),
		JoinDate:     sheets.ParseDate(sheets.Cell(row, 5)),
		Birthday:     sheets.ParseDate(sheets.Cell(row, 6)),
		Anniversary:  sheets.ParseDate(sheets.Cell(row, 7)),
		Status:       parseMemberStatus(sheets.Cell(row, 8)),
		TotalPaid:    sheets.ParseAmount(sheets.Cell(row, 9)),
		Balance:      sheets.ParseAmount(sheets.Cell(row, 10)),
		Year:         parseInt(sheets.Cell(row, 11)),
	}
}

// parseMemberStatus reads hand-edited status cells. Blank means active.
func parseMemberStatus(s string) model.MemberStatus {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	if s == "" {
		return model.MemberStatusActive
	}
	return model.MemberStatus(s)
}

func (r *sheetMemberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.t.append(ctx, memberToRow(member))
}

func (r *sheetMemberRepository) Update(ctx context.Context, member *model.Member) error {
	rowNum, _, err := r.t.find(ctx, memberEmailCol, member.Email)
	if err != nil {
		return err
	}
	return r.t.update(ctx, rowNum, memberToRow(member))
}

func (r *sheetMemberRepository) Delete(ctx context.Context, email string) error {
	rowNum, _, err := r.t.find(ctx, memberEmailCol, email)
	if err != nil {
		return err
	}
	return r.t.delete(ctx, rowNum)
}

func (r *sheetMemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	_, row, err := r.t.find(ctx, memberEmailCol, email)
	if err != nil {
		return nil, err
	}
	m := memberFromRow(row)
	return &m, nil
}

func (r *sheetMemberRepository) List(ctx context.Context, filter MemberFilter) ([]model.Member, error) {
	rows, err := r.t.rows(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	members := make([]model.Member, 0, len(rows))
	for _, row := range rows {
		m := memberFromRow(row)
		if m.Email == "" {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Name), search) && !strings.Contains(m.Email, search) {
			continue
		}
		members = append(members, m)
	}
	return members, nil
}
