package identity

import (
	"context"
	"testing"

	"github.com/lendloop/lendloop/internal/ledger"
)

func TestRegisterComputesScoreAndProvisionsAccount(t *testing.T) {
	repo := NewMemoryRepository()
	led := ledger.NewInMemory()
	svc := NewService(repo, led)

	ctx := context.Background()
	user, err := svc.Register(ctx, RegisterInput{Name: "Ana", Income: 5000, DebtCount: 1})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Score != 900 {
		t.Fatalf("expected score 900, got %d", user.Score)
	}

	balances, err := led.Balances(ctx, user.AccountCode())
	if err != nil {
		t.Fatalf("account not provisioned: %v", err)
	}
	if balances.Fiat != 0 || balances.Crypto != 0 {
		t.Fatalf("expected zero balances, got %+v", balances)
	}

	fetched, err := svc.FindByName(ctx, "Ana")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if fetched.Score != user.Score || fetched.Income != 5000 {
		t.Fatalf("unexpected user: %+v", fetched)
	}
}

func TestRegisterRejectsNegativeInput(t *testing.T) {
	svc := NewService(NewMemoryRepository(), ledger.NewInMemory())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ana", Income: -1}); err != ErrInvalidInput {
		t.Fatalf("expected invalid input for negative income, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Name: "Ana", Income: 100, DebtCount: -1}); err != ErrInvalidInput {
		t.Fatalf("expected invalid input for negative debt count, got %v", err)
	}
}

func TestDuplicateNamesResolveToFirstEntry(t *testing.T) {
	svc := NewService(NewMemoryRepository(), ledger.NewInMemory())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Bia", Income: 100}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Name: "Bia", Income: 9000}); err != nil {
		t.Fatalf("second register: %v", err)
	}

	found, err := svc.FindByName(ctx, "Bia")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if found.Income != 100 {
		t.Fatalf("expected first entry to win, got income %v", found.Income)
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected both entries stored, got %d", len(users))
	}
}

func TestFindByNameUnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepository(), ledger.NewInMemory())
	if _, err := svc.FindByName(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
