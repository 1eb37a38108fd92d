package ledger

import (
	"context"
	"sync"
)

type inMemoryLedger struct {
	mu       sync.RWMutex
	accounts map[string]Balances
}

// NewInMemory creates a concurrency-safe in-memory ledger. Balances live for
// the process lifetime only.
func NewInMemory() Ledger {
	return &inMemoryLedger{accounts: make(map[string]Balances)}
}

func (l *inMemoryLedger) EnsureAccount(_ context.Context, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.accounts[code]; !exists {
		l.accounts[code] = Balances{}
	}
	return nil
}

func (l *inMemoryLedger) Balances(_ context.Context, code string) (Balances, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	balances, exists := l.accounts[code]
	if !exists {
		return Balances{}, ErrAccountNotFound
	}
	return balances, nil
}

func (l *inMemoryLedger) Deposit(_ context.Context, code string, amount float64) (Balances, error) {
	if amount <= 0 {
		return Balances{}, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balances, exists := l.accounts[code]
	if !exists {
		return Balances{}, ErrAccountNotFound
	}

	balances.Fiat += amount
	l.accounts[code] = balances
	return balances, nil
}

func (l *inMemoryLedger) Convert(_ context.Context, code string, amount, rate float64) (Balances, error) {
	if amount <= 0 {
		return Balances{}, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balances, exists := l.accounts[code]
	if !exists {
		return Balances{}, ErrAccountNotFound
	}

	// Funds check and mutation share the critical section so a failed
	// conversion leaves the account untouched.
	if balances.Fiat < amount {
		return Balances{}, ErrInsufficientFunds
	}

	balances.Fiat -= amount
	balances.Crypto += amount * rate
	l.accounts[code] = balances
	return balances, nil
}
