package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lendloop/lendloop/internal/wallet"
)

// RegisterWalletRoutes wires balance mutation endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Post("/users/:name/deposit", h.Deposit)
	r.Post("/users/:name/convert", h.Convert)
}
