package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"duesmanager/internal/config"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/repository"
	"duesmanager/internal/service"
)

func main() {
	var (
		file          = flag.String("file", "", "path to a JSON array of members")
		url           = flag.String("url", "", "URL serving a JSON array of members")
		adminEmail    = flag.String("admin-email", "", "create an admin login with this email")
		adminName     = flag.String("admin-name", "Administrator", "name of the admin login")
		adminPassword = flag.String("admin-password", "", "password of the admin login")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	logger.Info("starting seed script")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fatal(logger, "load config", err)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		fatal(logger, "open store", err)
	}
	logger.Info("connected to store", slog.String("backend", cfg.StoreBackend))

	policy := service.DuesPolicy{MonthlyDue: cfg.MonthlyDue, Currency: cfg.CurrencySymbol}
	memberService := service.NewMemberService(store, nil, policy, logger)
	userService := service.NewUserService(store, nil, policy, logger)

	if *file != "" || *url != "" {
		records, err := loadRecords(ctx, *file, *url)
		if err != nil {
			fatal(logger, "load members", err)
		}
		logger.Info("fetched members", slog.Int("count", len(records)))

		members, skipped := service.ConvertImport(records)
		for _, reason := range skipped {
			logger.Warn("skipping member", slog.String("reason", reason))
		}

		count, err := memberService.Import(ctx, members)
		if err != nil {
			fatal(logger, "import members", err)
		}
		logger.Info("seed completed", slog.Int("imported", count), slog.Int("skipped", len(skipped)))
	}

	if *adminEmail != "" {
		if *adminPassword == "" {
			fatal(logger, "create admin", errors.New("-admin-password is required with -admin-email"))
		}
		_, err := userService.Create(ctx, service.UserInput{
			Email:    *adminEmail,
			Name:     *adminName,
			Password: *adminPassword,
			IsAdmin:  true,
		})
		switch {
		case errors.Is(err, apperrors.ErrEmailExists):
			logger.Info("admin login already exists", slog.String("email", *adminEmail))
		case err != nil:
			fatal(logger, "create admin", err)
		default:
			logger.Info("admin login created", slog.String("email", *adminEmail))
		}
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("error", err))
	os.Exit(1)
}

// loadRecords reads member records from a file, or from a URL when no file
// is given.
func loadRecords(ctx context.Context, file, url string) ([]service.ImportRecord, error) {
	var body []byte
	var err error
	if file != "" {
		body, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
	} else {
		body, err = fetch(ctx, url)
		if err != nil {
			return nil, err
		}
	}

	var records []service.ImportRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return records, nil
}

// fetch downloads member data from url.
func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
