package scoring

const (
	// MinScore is the floor applied to every computed credit score.
	MinScore = 300
	// MaxScore is the ceiling applied to every computed credit score.
	MaxScore = 900
)

// Compute derives a credit score from monthly income and the number of open
// debts. The raw value is income over (debtCount+1), scaled by ten and
// truncated, then clamped to the [MinScore, MaxScore] band. The clamp runs in
// float space: converting an out-of-range float to int is
// implementation-defined, so the raw value must be bounded before it is
// truncated. Callers must guarantee debtCount >= 0; registration rejects
// negative values before reaching this function.
func Compute(income float64, debtCount int) int {
	raw := (income / float64(debtCount+1)) * 10
	if raw <= MinScore {
		return MinScore
	}
	if raw >= MaxScore {
		return MaxScore
	}
	return int(raw)
}
