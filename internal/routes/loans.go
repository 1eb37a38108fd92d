package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lendloop/lendloop/internal/loan"
)

// RegisterLoanRoutes wires the loan lifecycle endpoints.
func RegisterLoanRoutes(r fiber.Router, h *loan.Handler) {
	r.Post("/loans", h.Request)
	r.Get("/loans", h.List)
	r.Get("/loans/:index", h.Get)
	r.Post("/loans/:index/approve", h.Approve)
	r.Post("/loans/:index/pay", h.Pay)
}
