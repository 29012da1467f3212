package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"duesmanager/internal/auth"
	"duesmanager/internal/config"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/handler"
	"duesmanager/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	memberHandler *handler.MemberHandler,
	paymentHandler *handler.PaymentHandler,
	userHandler *handler.UserHandler,
	emailHandler *handler.EmailHandler,
	seedHandler *handler.SeedHandler,
) {
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a session)
	secured := api.Group("", Session(jwtService, tokenStore))
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/session", authHandler.Session)
	secured.PUT("/auth/password", authHandler.ChangePassword)
	secured.GET("/members", accountHandler.Profile)
	secured.GET("/members/status", accountHandler.Status)

	// Admin routes
	admin := secured.Group("", RequireAdmin)
	admin.GET("/admin/members", memberHandler.ListMembers)
	admin.POST("/admin/members", memberHandler.CreateMember)
	admin.POST("/admin/members/import", seedHandler.ImportMembers)
	admin.GET("/admin/members/:email", memberHandler.GetMember)
	admin.PUT("/admin/members/:email", memberHandler.UpdateMember)
	admin.DELETE("/admin/members/:email", memberHandler.DeleteMember)
	admin.GET("/admin/members/:email/status", memberHandler.MemberStatus)
	admin.GET("/admin/dashboard", memberHandler.Dashboard)
	admin.GET("/admin/celebrations", memberHandler.Celebrations)
	admin.GET("/admin/consistency", memberHandler.Consistency)

	admin.GET("/admin/payments", paymentHandler.ListPayments)
	admin.POST("/admin/payments", paymentHandler.RecordPayment)
	admin.PUT("/admin/payments/:id", paymentHandler.UpdatePayment)
	admin.DELETE("/admin/payments/:id", paymentHandler.DeletePayment)

	admin.GET("/users", userHandler.ListUsers)
	admin.POST("/users", userHandler.CreateUser)
	admin.PUT("/users/:email", userHandler.UpdateUser)
	admin.DELETE("/users/:email", userHandler.DeleteUser)

	admin.POST("/email/send", emailHandler.SendEmail)
	admin.POST("/email/bulk", emailHandler.SendBulk)
	admin.POST("/email/celebrations", emailHandler.SendCelebrations)

	if cfg.SwaggerHost != "" {
		slog.Info("swagger documentation available", slog.String("url", strings.TrimRight(cfg.SwaggerHost, "/")+"/swagger/index.html"))
	}
}

// Session authenticates requests by the session cookie or a bearer token and
// rejects revoked sessions. Claims are stored under handler.ContextKeyClaims.
func Session(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.ContextKeyClaims,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + handler.SessionCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, err := tokenStore.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return nil, err
			}
			if revoked {
				return nil, apperrors.ErrUnauthorized
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireAdmin rejects sessions without the admin flag.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(handler.ContextKeyClaims).(*auth.Claims)
		if !ok || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		}
		if !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// errorHandler writes every error in the {"error", "code"} shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := apperrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch msg := he.Message.(type) {
		case apperrors.ErrorResponse:
			body = msg
		case string:
			body = apperrors.ErrorResponse{Error: msg, Code: codeForStatus(status)}
		default:
			body = apperrors.ErrorResponse{Error: http.StatusText(status), Code: codeForStatus(status)}
		}
		if status >= http.StatusInternalServerError && body.Code == "INTERNAL_ERROR" {
			body.Error = "internal server error"
		}
	} else {
		slog.ErrorContext(c.Request().Context(), "unhandled error", slog.Any("error", err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "write error response", slog.Any("error", err))
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_INPUT"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
