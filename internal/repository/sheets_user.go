package repository

import (
	"context"
	"strings"

	"duesmanager/internal/model"
	"duesmanager/internal/sheets"
)

type sheetUserRepository struct {
	t table
}

func userToRow(u *model.User) []interface{} {
	return []interface{}{u.Email, u.PasswordHash, u.Name, sheets.FormatBool(u.IsAdmin)}
}

func userFromRow(row []interface{}) model.User {
	return model.User{
		Email:        strings.ToLower(strings.TrimSpace(sheets.Cell(row, 0))),
		PasswordHash: sheets.Cell(row, 1),
		Name:         strings.TrimSpace(sheets.Cell(row, 2)),
		IsAdmin:      sheets.ParseBool(sheets.Cell(row, 3)),
	}
}

func (r *sheetUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.t.append(ctx, userToRow(user))
}

func (r *sheetUserRepository) Update(ctx context.Context, user *model.User) error {
	rowNum, _, err := r.t.find(ctx, 0, user.Email)
	if err != nil {
		return err
	}
	return r.t.update(ctx, rowNum, userToRow(user))
}

func (r *sheetUserRepository) Delete(ctx context.Context, email string) error {
	rowNum, _, err := r.t.find(ctx, 0, email)
	if err != nil {
		return err
	}
	return r.t.delete(ctx, rowNum)
}

func (r *sheetUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	_, row, err := r.t.find(ctx, 0, email)
	if err != nil {
		return nil, err
	}
	u := userFromRow(row)
	return &u, nil
}

func (r *sheetUserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.t.rows(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		if u := userFromRow(row); u.Email != "" {
			users = append(users, u)
		}
	}
	return users, nil
}
