package loan

// Interest tiers quoted against the borrower's score snapshot.
const (
	RatePrime    = 0.02
	RateStandard = 0.05
	RateSubprime = 0.10
)

// RateForScore maps a credit score to its interest tier. A score of 700 or
// above prices at the prime rate, 500 to 699 at the standard rate, anything
// below at the subprime rate.
func RateForScore(score int) float64 {
	switch {
	case score >= 700:
		return RatePrime
	case score >= 500:
		return RateStandard
	default:
		return RateSubprime
	}
}
