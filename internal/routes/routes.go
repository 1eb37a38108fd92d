package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/lendloop/lendloop/internal/config"
	"github.com/lendloop/lendloop/internal/identity"
	"github.com/lendloop/lendloop/internal/ledger"
	"github.com/lendloop/lendloop/internal/loan"
	"github.com/lendloop/lendloop/internal/middleware"
	"github.com/lendloop/lendloop/internal/notification"
	"github.com/lendloop/lendloop/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.WriteRateLimit(d.Cache, d.Cfg.WriteRatePerMin))
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// Services and handlers; all state is in-process for the process lifetime.
	ledgerBackend := ledger.NewInMemory()
	userRepo := identity.NewMemoryRepository()
	identitySvc := identity.NewService(userRepo, ledgerBackend)
	walletSvc := wallet.NewService(userRepo, ledgerBackend, d.Cfg.ExchangeRate)
	notifier := notification.NewLoggerNotifier(d.Logger)
	loanSvc := loan.NewService(loan.NewMemoryBook(), userRepo, notifier)

	loanHandler := loan.NewHandler(loanSvc)
	walletHandler := wallet.NewHandler(walletSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterUserRoutes(api, identitySvc, walletSvc, d.Logger)
	RegisterLoanRoutes(api, loanHandler)
	RegisterWalletRoutes(api, walletHandler)

	return nil
}
