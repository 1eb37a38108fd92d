package loan

import "time"

// Status tracks a loan through its forward-only lifecycle.
type Status string

const (
	// StatusAwaitingInvestor marks a freshly requested loan.
	StatusAwaitingInvestor Status = "awaiting_investor"
	// StatusApproved marks a loan funded by an investor.
	StatusApproved Status = "approved"
	// StatusPaid marks a settled loan.
	StatusPaid Status = "paid"
)

// Loan is one record in the append-only book. Its positional index in the
// book is the external handle; indices are never reused or compacted.
type Loan struct {
	Borrower  string
	Principal float64
	// Score is a snapshot of the borrower's score at request time. The rate
	// quoted from it never changes, even if a later registration would score
	// differently.
	Score             int
	Rate              float64
	Status            Status
	Investor          string
	Installments      int
	InstallmentAmount float64
	TotalPaid         float64
	CreatedAt         time.Time
}
