package ledger

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound occurs when the referenced account code was never
	// provisioned.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount indicates a non-positive monetary input.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds occurs when the fiat balance cannot cover a
	// requested conversion.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Balances holds the dual-currency position of one account. Fiat carries the
// deposit currency, Crypto the simulated asset credited by conversions.
// Stored values are never rounded; display rounding belongs to the transport.
type Balances struct {
	Fiat   float64
	Crypto float64
}

// Ledger defines the contract implemented by balance backends.
type Ledger interface {
	EnsureAccount(ctx context.Context, code string) error
	Balances(ctx context.Context, code string) (Balances, error)
	Deposit(ctx context.Context, code string, amount float64) (Balances, error)
	Convert(ctx context.Context, code string, amount, rate float64) (Balances, error)
}

// UserAccountCode returns the account code backing a registered user's
// balances.
func UserAccountCode(name string) string {
	return fmt.Sprintf("user:%s", name)
}
