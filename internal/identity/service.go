package identity

import (
	"context"
	"errors"
	"time"

	"github.com/lendloop/lendloop/internal/ledger"
	"github.com/lendloop/lendloop/internal/scoring"
)

// ErrInvalidInput indicates negative income or debt count on registration.
var ErrInvalidInput = errors.New("income and debt count must be non-negative")

// Service manages user registration and lookup.
type Service struct {
	repo   Repository
	ledger ledger.Ledger
}

// NewService creates a new identity service.
func NewService(repo Repository, led ledger.Ledger) *Service {
	return &Service{repo: repo, ledger: led}
}

// RegisterInput captures the data required to register a user.
type RegisterInput struct {
	Name      string
	Income    float64
	DebtCount int
}

// Register computes the credit score, stores the user and provisions the
// backing ledger account with zero balances. The score is fixed at
// registration and never recomputed.
func (s *Service) Register(ctx context.Context, input RegisterInput) (User, error) {
	if input.Income < 0 || input.DebtCount < 0 {
		return User{}, ErrInvalidInput
	}

	user := User{
		Name:      input.Name,
		Income:    input.Income,
		DebtCount: input.DebtCount,
		Score:     scoring.Compute(input.Income, input.DebtCount),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	if err := s.ledger.EnsureAccount(ctx, user.AccountCode()); err != nil {
		return User{}, err
	}

	return user, nil
}

// FindByName resolves a user by name, first match wins.
func (s *Service) FindByName(ctx context.Context, name string) (User, error) {
	return s.repo.FindByName(ctx, name)
}

// List returns all users in registration order.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
