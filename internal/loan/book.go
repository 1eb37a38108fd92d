package loan

import (
	"context"
	"errors"
)

var (
	// ErrLoanNotFound occurs when an index falls outside the book.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrInvalidState indicates a transition attempted from the wrong status.
	ErrInvalidState = errors.New("invalid loan state for transition")

	// ErrInvalidInstallments indicates a non-positive installment count.
	ErrInvalidInstallments = errors.New("installment count must be positive")
)

// Book is the append-only ordered loan store. Approve and Pay run their
// status guard and mutation as one atomic step, so two concurrent calls on
// the same index have at most one winner.
type Book interface {
	Append(ctx context.Context, loan Loan) (int, error)
	Get(ctx context.Context, index int) (Loan, error)
	Approve(ctx context.Context, index int, investor string) (Loan, error)
	Pay(ctx context.Context, index, installments int) (Loan, error)
	List(ctx context.Context) ([]Loan, error)
}
