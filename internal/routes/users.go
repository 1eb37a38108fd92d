package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lendloop/lendloop/internal/identity"
	"github.com/lendloop/lendloop/internal/validation"
	"github.com/lendloop/lendloop/internal/wallet"
)

type userView struct {
	Name          string  `json:"name"`
	Income        float64 `json:"income"`
	DebtCount     int     `json:"debt_count"`
	Score         int     `json:"score"`
	FiatBalance   float64 `json:"fiat_balance"`
	CryptoBalance float64 `json:"crypto_balance"`
}

// RegisterUserRoutes wires registration and the user listing, joining each
// user with the balances held in the ledger.
func RegisterUserRoutes(r fiber.Router, ids *identity.Service, wallets *wallet.Service, logger *slog.Logger) {
	r.Post("/users", func(c *fiber.Ctx) error {
		var req struct {
			Name      string  `json:"name" validate:"required"`
			Income    float64 `json:"income" validate:"gte=0"`
			DebtCount int     `json:"debt_count" validate:"gte=0"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		if err := validation.Struct(req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		user, err := ids.Register(c.UserContext(), identity.RegisterInput{
			Name:      req.Name,
			Income:    req.Income,
			DebtCount: req.DebtCount,
		})
		if err != nil {
			if errors.Is(err, identity.ErrInvalidInput) {
				return fiber.NewError(http.StatusBadRequest, err.Error())
			}
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		if logger != nil {
			logger.Info("user registered",
				slog.String("name", user.Name),
				slog.Int("score", user.Score),
			)
		}
		return c.Status(http.StatusCreated).JSON(userView{
			Name:      user.Name,
			Income:    user.Income,
			DebtCount: user.DebtCount,
			Score:     user.Score,
		})
	})

	r.Get("/users", func(c *fiber.Ctx) error {
		users, err := ids.List(c.UserContext())
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		out := make([]userView, 0, len(users))
		for _, user := range users {
			view := userView{
				Name:      user.Name,
				Income:    user.Income,
				DebtCount: user.DebtCount,
				Score:     user.Score,
			}
			// Duplicate names share the first entry's account, so the join
			// is best effort.
			if balances, err := wallets.Balances(c.UserContext(), user.Name); err == nil {
				view.FiatBalance = balances.Fiat
				view.CryptoBalance = balances.Crypto
			}
			out = append(out, view)
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"users": out})
	})
}
