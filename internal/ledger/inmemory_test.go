package ledger

import (
	"context"
	"math"
	"sync"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInMemoryLedger_Deposit(t *testing.T) {
	l := NewInMemory()
	ctx := context.Background()

	if err := l.EnsureAccount(ctx, "user:ana"); err != nil {
		t.Fatalf("ensure account: %v", err)
	}

	balances, err := l.Deposit(ctx, "user:ana", 150.50)
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if !almostEqual(balances.Fiat, 150.50) {
		t.Fatalf("expected fiat 150.50, got %v", balances.Fiat)
	}
	if balances.Crypto != 0 {
		t.Fatalf("expected crypto untouched, got %v", balances.Crypto)
	}

	if _, err := l.Deposit(ctx, "user:ana", 0); err != ErrInvalidAmount {
		t.Fatalf("expected invalid amount for zero deposit, got %v", err)
	}
	if _, err := l.Deposit(ctx, "user:ana", -5); err != ErrInvalidAmount {
		t.Fatalf("expected invalid amount for negative deposit, got %v", err)
	}
	if _, err := l.Deposit(ctx, "user:ghost", 10); err != ErrAccountNotFound {
		t.Fatalf("expected account not found, got %v", err)
	}
}

func TestInMemoryLedger_ConvertAppliesRate(t *testing.T) {
	l := NewInMemory()
	ctx := context.Background()
	l.EnsureAccount(ctx, "user:ana")
	SeedBalances(l, "user:ana", Balances{Fiat: 100})

	balances, err := l.Convert(ctx, "user:ana", 100, 0.00003)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if balances.Fiat != 0 {
		t.Fatalf("expected fiat drained to 0, got %v", balances.Fiat)
	}
	if !almostEqual(balances.Crypto, 0.003) {
		t.Fatalf("expected crypto 0.003, got %v", balances.Crypto)
	}
}

func TestInMemoryLedger_ConvertInsufficientFundsMutatesNothing(t *testing.T) {
	l := NewInMemory()
	ctx := context.Background()
	l.EnsureAccount(ctx, "user:ana")
	SeedBalances(l, "user:ana", Balances{Fiat: 50})

	if _, err := l.Convert(ctx, "user:ana", 100, 0.00003); err != ErrInsufficientFunds {
		t.Fatalf("expected insufficient funds, got %v", err)
	}

	balances, err := l.Balances(ctx, "user:ana")
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if !almostEqual(balances.Fiat, 50) || balances.Crypto != 0 {
		t.Fatalf("failed conversion mutated balances: %+v", balances)
	}
}

func TestInMemoryLedger_ConvertRejectsNonPositive(t *testing.T) {
	l := NewInMemory()
	ctx := context.Background()
	l.EnsureAccount(ctx, "user:ana")

	if _, err := l.Convert(ctx, "user:ana", 0, 0.00003); err != ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if _, err := l.Convert(ctx, "user:ghost", 10, 0.00003); err != ErrAccountNotFound {
		t.Fatalf("expected account not found, got %v", err)
	}
}

func TestInMemoryLedger_ConcurrentDeposits(t *testing.T) {
	l := NewInMemory()
	ctx := context.Background()
	l.EnsureAccount(ctx, "user:ana")

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Deposit(ctx, "user:ana", 10); err != nil {
				t.Errorf("deposit failed: %v", err)
			}
		}()
	}
	wg.Wait()

	balances, err := l.Balances(ctx, "user:ana")
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if !almostEqual(balances.Fiat, workers*10) {
		t.Fatalf("expected fiat %d, got %v", workers*10, balances.Fiat)
	}
}
