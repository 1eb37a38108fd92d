package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/lendloop/lendloop/internal/identity"
	"github.com/lendloop/lendloop/internal/notification"
)

// Service applies underwriting rules on top of the loan book.
type Service struct {
	book     Book
	users    identity.Repository
	notifier notification.Notifier
}

// NewService constructs a loan service.
func NewService(book Book, users identity.Repository, notifier notification.Notifier) *Service {
	return &Service{book: book, users: users, notifier: notifier}
}

// RequestResult pairs a created loan with its book index handle.
type RequestResult struct {
	Index int
	Loan  Loan
}

// Request prices a new loan from the borrower's current score and appends it
// to the book awaiting an investor. Principal validation is the caller's
// responsibility.
func (s *Service) Request(ctx context.Context, borrowerName string, amount float64) (RequestResult, error) {
	borrower, err := s.users.FindByName(ctx, borrowerName)
	if err != nil {
		return RequestResult{}, err
	}

	record := Loan{
		Borrower:  borrower.Name,
		Principal: amount,
		Score:     borrower.Score,
		Rate:      RateForScore(borrower.Score),
		Status:    StatusAwaitingInvestor,
		CreatedAt: time.Now().UTC(),
	}

	index, err := s.book.Append(ctx, record)
	if err != nil {
		return RequestResult{}, err
	}

	return RequestResult{Index: index, Loan: record}, nil
}

// Approve funds a waiting loan on behalf of the named investor. The investor
// may be the borrower; no self-funding check is applied.
func (s *Service) Approve(ctx context.Context, index int, investor string) (Loan, error) {
	record, err := s.book.Approve(ctx, index, investor)
	if err != nil {
		return Loan{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindLoanApproved,
			Destination: record.Borrower,
			Body:        fmt.Sprintf("Your loan of %.2f was funded by %s", record.Principal, investor),
		})
	}

	return record, nil
}

// Pay settles an approved loan in the given number of equal installments.
func (s *Service) Pay(ctx context.Context, index, installments int) (Loan, error) {
	record, err := s.book.Pay(ctx, index, installments)
	if err != nil {
		return Loan{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindLoanSettled,
			Destination: record.Borrower,
			Body:        fmt.Sprintf("Loan settled in %d installments of %.2f", record.Installments, record.InstallmentAmount),
		})
	}

	return record, nil
}

// Get returns one loan by its index handle.
func (s *Service) Get(ctx context.Context, index int) (Loan, error) {
	return s.book.Get(ctx, index)
}

// List returns a snapshot of the book in request order.
func (s *Service) List(ctx context.Context) ([]Loan, error) {
	return s.book.List(ctx)
}
