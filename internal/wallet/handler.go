package wallet

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lendloop/lendloop/internal/identity"
	"github.com/lendloop/lendloop/internal/ledger"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

type balancesResponse struct {
	Name          string  `json:"name"`
	FiatBalance   float64 `json:"fiat_balance"`
	CryptoBalance float64 `json:"crypto_balance"`
}

// Deposit credits fiat to the named user.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	name := c.Params("name")
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	balances, err := h.service.Deposit(c.UserContext(), name, req.Amount)
	if err != nil {
		return mapWalletError(err)
	}
	return c.Status(http.StatusOK).JSON(toBalancesResponse(name, balances))
}

// Convert swaps fiat for crypto at the fixed rate.
func (h *Handler) Convert(c *fiber.Ctx) error {
	name := c.Params("name")
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	balances, err := h.service.Convert(c.UserContext(), name, req.Amount)
	if err != nil {
		return mapWalletError(err)
	}
	return c.Status(http.StatusOK).JSON(toBalancesResponse(name, balances))
}

func mapWalletError(err error) error {
	switch {
	case errors.Is(err, identity.ErrNotFound), errors.Is(err, ledger.ErrAccountNotFound):
		return fiber.NewError(http.StatusNotFound, "user not found")
	case errors.Is(err, ledger.ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}

func toBalancesResponse(name string, balances ledger.Balances) balancesResponse {
	return balancesResponse{Name: name, FiatBalance: balances.Fiat, CryptoBalance: balances.Crypto}
}
