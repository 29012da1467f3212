package service

import (
	"fmt"
	"strings"

	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/model"
	"duesmanager/internal/sheets"
)

// ImportRecord is one member in an import file. Dates accept the same
// layouts as spreadsheet cells.
type ImportRecord struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	JoinDate    string `json:"join_date"`
	Birthday    string `json:"birthday"`
	Anniversary string `json:"anniversary"`
	Status      string `json:"status"`
}

// Member converts the record, rejecting it when the email is missing or the
// status is unknown.
func (r ImportRecord) Member() (model.Member, error) {
	email := normalizeEmail(r.Email)
	if email == "" {
		return model.Member{}, fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	}
	status := model.MemberStatus(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(r.Status)), " ", "-"))
	if status == "" {
		status = model.MemberStatusActive
	}
	if !status.Valid() {
		return model.Member{}, fmt.Errorf("%w: status %q for %s", apperrors.ErrInvalidInput, r.Status, email)
	}
	return model.Member{
		Email:       email,
		Name:        strings.TrimSpace(r.Name),
		Phone:       strings.TrimSpace(r.Phone),
		JoinDate:    sheets.ParseDate(r.JoinDate),
		Birthday:    sheets.ParseDate(r.Birthday),
		Anniversary: sheets.ParseDate(r.Anniversary),
		Status:      status,
	}, nil
}

// ConvertImport converts records, returning the valid members and the
// reasons the others were skipped.
func ConvertImport(records []ImportRecord) ([]model.Member, []string) {
	members := make([]model.Member, 0, len(records))
	var skipped []string
	for _, r := range records {
		m, err := r.Member()
		if err != nil {
			skipped = append(skipped, err.Error())
			continue
		}
		members = append(members, m)
	}
	return members, skipped
}
