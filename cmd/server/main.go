package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	netmail "net/mail"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "duesmanager/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"duesmanager/internal/auth"
	"duesmanager/internal/cache"
	"duesmanager/internal/config"
	"duesmanager/internal/handler"
	"duesmanager/internal/mail"
	"duesmanager/internal/repository"
	"duesmanager/internal/router"
	"duesmanager/internal/service"
)

// @title Dues Manager API
// @version 1.0
// @description Membership dues tracking: members, payments, month-by-month dues status and member email.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("store ready", slog.String("backend", cfg.StoreBackend))

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if cfg.RedisAddr != "" && !cacheClient.Ping(ctx) {
		logger.Warn("redis unreachable, continuing without cache", slog.String("addr", cfg.RedisAddr))
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize mail
	from := netmail.Address{Name: cfg.MailFromName, Address: cfg.MailFrom}
	renderer, err := mail.NewRenderer(cfg.AppName, cfg.AppURL)
	if err != nil {
		return err
	}
	transport, err := mail.NewTransport(mail.Options{
		Provider:     cfg.MailProvider,
		From:         from,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUser:     cfg.SMTPUser,
		SMTPPassword: cfg.SMTPPassword,
		SendGridKey:  cfg.SendGridAPIKey,
	}, mail.NewConsoleTransport(from, logger))
	if err != nil {
		return err
	}
	logger.Info("mail ready", slog.String("provider", transport.Name()))

	// Initialize services
	policy := service.DuesPolicy{MonthlyDue: cfg.MonthlyDue, Currency: cfg.CurrencySymbol}
	authService := service.NewAuthService(store, jwtService, tokenStore)
	memberService := service.NewMemberService(store, cacheClient, policy, logger)
	paymentService := service.NewPaymentService(store, cacheClient, policy, logger)
	userService := service.NewUserService(store, cacheClient, policy, logger)
	emailService := service.NewEmailService(store, renderer, transport, policy, cfg.AppName, cfg.BulkConcurrency, logger)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		tokenStore,
		handler.NewAuthHandler(authService, cfg.CookieSecure),
		handler.NewAccountHandler(memberService),
		handler.NewMemberHandler(memberService),
		handler.NewPaymentHandler(paymentService),
		handler.NewUserHandler(userService),
		handler.NewEmailHandler(emailService),
		handler.NewSeedHandler(memberService),
	)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("listening", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
