package repository

import (
	"context"
	"fmt"

	"duesmanager/internal/config"
	"duesmanager/internal/db"
	"duesmanager/internal/sheets"
)

// Open builds the store selected by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSheets:
		api, err := sheets.NewGoogle(ctx, cfg.SheetsID, []byte(cfg.SheetsCredentialsJSON), cfg.SheetsCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("sheets init: %w", err)
		}
		return NewSheetsStore(api), nil
	case config.BackendSQL:
		gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("database init: %w", err)
		}
		if err := Migrate(gormDB); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		return NewGormStore(gormDB), nil
	case config.BackendMemory:
		return NewSheetsStore(sheets.NewMemory(SheetHeaders())), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
