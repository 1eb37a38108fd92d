package identity

import (
	"time"

	"github.com/lendloop/lendloop/internal/ledger"
)

// User represents a registered borrower or investor. The name doubles as the
// primary key; there is no separate identifier.
type User struct {
	Name      string
	Income    float64
	DebtCount int
	Score     int
	CreatedAt time.Time
}

// AccountCode returns the ledger account holding the user's balances.
func (u User) AccountCode() string {
	return ledger.UserAccountCode(u.Name)
}
