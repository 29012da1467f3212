package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendSheets = "sheets"
	BackendSQL    = "sql"
	BackendMemory = "memory"
)

// Config holds application level configuration loaded from the environment.
type Config struct {
	ServerPort  string
	SwaggerHost string

	StoreBackend          string
	SheetsID              string
	SheetsCredentialsFile string
	SheetsCredentialsJSON string
	DBDriver              string
	DBDSN                 string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool

	MonthlyDue     decimal.Decimal
	CurrencySymbol string

	AppName string
	AppURL  string

	MailProvider    string
	MailFrom        string
	MailFromName    string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	SendGridAPIKey  string
	BulkConcurrency int
}

// Load builds Config from the environment with sensible defaults. A .env file
// in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SWAGGER_HOST", "")
	v.SetDefault("STORE_BACKEND", BackendSheets)
	v.SetDefault("SHEETS_ID", "")
	v.SetDefault("SHEETS_CREDENTIALS_FILE", "")
	v.SetDefault("SHEETS_CREDENTIALS_JSON", "")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_DSN", "user:password@tcp(localhost:3306)/dues?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("SESSION_TTL", 30*24*time.Hour)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("MONTHLY_DUE", "10")
	v.SetDefault("CURRENCY_SYMBOL", "£")
	v.SetDefault("APP_NAME", "Dues Manager")
	v.SetDefault("APP_URL", "http://localhost:3000")
	v.SetDefault("MAIL_PROVIDER", "console")
	v.SetDefault("MAIL_FROM", "noreply@localhost")
	v.SetDefault("MAIL_FROM_NAME", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("BULK_CONCURRENCY", 5)
	v.AutomaticEnv()

	due, err := decimal.NewFromString(strings.TrimSpace(v.GetString("MONTHLY_DUE")))
	if err != nil {
		return nil, fmt.Errorf("parse MONTHLY_DUE: %w", err)
	}

	cfg := &Config{
		ServerPort:            v.GetString("SERVER_PORT"),
		SwaggerHost:           v.GetString("SWAGGER_HOST"),
		StoreBackend:          strings.ToLower(v.GetString("STORE_BACKEND")),
		SheetsID:              v.GetString("SHEETS_ID"),
		SheetsCredentialsFile: v.GetString("SHEETS_CREDENTIALS_FILE"),
		SheetsCredentialsJSON: v.GetString("SHEETS_CREDENTIALS_JSON"),
		DBDriver:              strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:                 v.GetString("DB_DSN"),
		RedisAddr:             v.GetString("REDIS_ADDR"),
		RedisDB:               v.GetInt("REDIS_DB"),
		RedisPass:             v.GetString("REDIS_PASSWORD"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		SessionTTL:            v.GetDuration("SESSION_TTL"),
		CookieSecure:          v.GetBool("COOKIE_SECURE"),
		MonthlyDue:            due,
		CurrencySymbol:        v.GetString("CURRENCY_SYMBOL"),
		AppName:               v.GetString("APP_NAME"),
		AppURL:                v.GetString("APP_URL"),
		MailProvider:          strings.ToLower(v.GetString("MAIL_PROVIDER")),
		MailFrom:              v.GetString("MAIL_FROM"),
		MailFromName:          v.GetString("MAIL_FROM_NAME"),
		SMTPHost:              v.GetString("SMTP_HOST"),
		SMTPPort:              v.GetInt("SMTP_PORT"),
		SMTPUser:              v.GetString("SMTP_USER"),
		SMTPPassword:          v.GetString("SMTP_PASSWORD"),
		SendGridAPIKey:        v.GetString("SENDGRID_API_KEY"),
		BulkConcurrency:       v.GetInt("BULK_CONCURRENCY"),
	}
	if cfg.MailFromName == "" {
		cfg.MailFromName = cfg.AppName
	}
	if cfg.BulkConcurrency < 1 {
		cfg.BulkConcurrency = 1
	}

	switch cfg.StoreBackend {
	case BackendSheets:
		if cfg.SheetsID == "" {
			return nil, fmt.Errorf("SHEETS_ID is required for the %s backend", BackendSheets)
		}
	case BackendSQL, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return cfg, nil
}
