package wallet

import (
	"context"

	"github.com/lendloop/lendloop/internal/identity"
	"github.com/lendloop/lendloop/internal/ledger"
)

// DefaultExchangeRate is the fixed fiat-to-crypto quote applied by Convert
// when no override is configured.
const DefaultExchangeRate = 0.00003

// Service mutates user balances through the ledger.
type Service struct {
	users  identity.Repository
	ledger ledger.Ledger
	rate   float64
}

// NewService builds a wallet service. A non-positive rate falls back to
// DefaultExchangeRate.
func NewService(users identity.Repository, led ledger.Ledger, rate float64) *Service {
	if rate <= 0 {
		rate = DefaultExchangeRate
	}
	return &Service{users: users, ledger: led, rate: rate}
}

// Deposit credits the user's fiat balance.
func (s *Service) Deposit(ctx context.Context, name string, amount float64) (ledger.Balances, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return ledger.Balances{}, err
	}
	return s.ledger.Deposit(ctx, user.AccountCode(), amount)
}

// Convert debits fiat and credits crypto at the fixed exchange rate. A failed
// conversion leaves both balances untouched.
func (s *Service) Convert(ctx context.Context, name string, amount float64) (ledger.Balances, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return ledger.Balances{}, err
	}
	return s.ledger.Convert(ctx, user.AccountCode(), amount, s.rate)
}

// Balances returns the user's current position.
func (s *Service) Balances(ctx context.Context, name string) (ledger.Balances, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return ledger.Balances{}, err
	}
	return s.ledger.Balances(ctx, user.AccountCode())
}
