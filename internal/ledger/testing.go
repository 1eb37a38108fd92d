package ledger

// SeedBalances is a test helper that overwrites an account's balances when
// using the in-memory ledger.
func SeedBalances(l Ledger, code string, balances Balances) {
	if mem, ok := l.(*inMemoryLedger); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		mem.accounts[code] = balances
	}
}
