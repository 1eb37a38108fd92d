package loan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lendloop/lendloop/internal/identity"
	"github.com/lendloop/lendloop/internal/validation"
)

// Handler exposes loan HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a loan HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type requestLoanRequest struct {
	Borrower string  `json:"borrower" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0"`
}

type approveRequest struct {
	Investor string `json:"investor" validate:"required"`
}

type payRequest struct {
	Installments int `json:"installments"`
}

type loanResponse struct {
	Index             int     `json:"index"`
	Borrower          string  `json:"borrower"`
	Principal         float64 `json:"principal"`
	Score             int     `json:"score"`
	Rate              float64 `json:"rate"`
	Status            string  `json:"status"`
	Investor          string  `json:"investor,omitempty"`
	Installments      int     `json:"installments,omitempty"`
	InstallmentAmount float64 `json:"installment_amount,omitempty"`
	TotalPaid         float64 `json:"total_paid,omitempty"`
}

// Request creates a loan priced from the borrower's score.
func (h *Handler) Request(c *fiber.Ctx) error {
	var req requestLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Request(c.UserContext(), req.Borrower, req.Amount)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "borrower not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(toResponse(result.Index, result.Loan))
}

// Approve funds a waiting loan.
func (h *Handler) Approve(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return err
	}

	var req approveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Approve(c.UserContext(), index, req.Investor)
	if err != nil {
		return mapTransitionError(err)
	}

	return c.Status(http.StatusOK).JSON(toResponse(index, record))
}

// Pay settles an approved loan in installments.
func (h *Handler) Pay(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return err
	}

	var req payRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Pay(c.UserContext(), index, req.Installments)
	if err != nil {
		return mapTransitionError(err)
	}

	return c.Status(http.StatusOK).JSON(toResponse(index, record))
}

// Get returns one loan by its index handle.
func (h *Handler) Get(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return err
	}

	record, err := h.service.Get(c.UserContext(), index)
	if err != nil {
		return mapTransitionError(err)
	}

	return c.Status(http.StatusOK).JSON(toResponse(index, record))
}

// List returns every loan in request order.
func (h *Handler) List(c *fiber.Ctx) error {
	records, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	out := make([]loanResponse, len(records))
	for i, record := range records {
		out[i] = toResponse(i, record)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"loans": out})
}

func parseIndex(c *fiber.Ctx) (int, error) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "loan index must be an integer")
	}
	return index, nil
}

func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, ErrLoanNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidState):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInstallments):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}

func toResponse(index int, record Loan) loanResponse {
	return loanResponse{
		Index:             index,
		Borrower:          record.Borrower,
		Principal:         record.Principal,
		Score:             record.Score,
		Rate:              record.Rate,
		Status:            string(record.Status),
		Investor:          record.Investor,
		Installments:      record.Installments,
		InstallmentAmount: record.InstallmentAmount,
		TotalPaid:         record.TotalPaid,
	}
}
