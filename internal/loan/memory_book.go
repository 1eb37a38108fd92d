package loan

import (
	"context"
	"math"
	"sync"
)

type memoryBook struct {
	mu    sync.RWMutex
	loans []Loan
}

// NewMemoryBook creates the in-memory append-only loan book.
func NewMemoryBook() Book {
	return &memoryBook{}
}

func (b *memoryBook) Append(_ context.Context, loan Loan) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loans = append(b.loans, loan)
	return len(b.loans) - 1, nil
}

func (b *memoryBook) Get(_ context.Context, index int) (Loan, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if index < 0 || index >= len(b.loans) {
		return Loan{}, ErrLoanNotFound
	}
	return b.loans[index], nil
}

func (b *memoryBook) Approve(_ context.Context, index int, investor string) (Loan, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.loans) {
		return Loan{}, ErrLoanNotFound
	}

	record := b.loans[index]
	if record.Status != StatusAwaitingInvestor {
		return Loan{}, ErrInvalidState
	}

	record.Status = StatusApproved
	record.Investor = investor
	b.loans[index] = record
	return record, nil
}

func (b *memoryBook) Pay(_ context.Context, index, installments int) (Loan, error) {
	if installments <= 0 {
		return Loan{}, ErrInvalidInstallments
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.loans) {
		return Loan{}, ErrLoanNotFound
	}

	record := b.loans[index]
	if record.Status != StatusApproved {
		return Loan{}, ErrInvalidState
	}

	perInstallment := record.Principal * (1 + record.Rate) / float64(installments)

	record.Status = StatusPaid
	record.Installments = installments
	record.InstallmentAmount = round2(perInstallment)
	record.TotalPaid = round2(perInstallment * float64(installments))
	b.loans[index] = record
	return record, nil
}

func (b *memoryBook) List(_ context.Context) ([]Loan, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Loan, len(b.loans))
	copy(out, b.loans)
	return out, nil
}

// round2 rounds to two decimals for currency display amounts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
