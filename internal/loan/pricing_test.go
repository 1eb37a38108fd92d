package loan

import "testing"

func TestRateForScoreThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  float64
	}{
		{score: 900, want: RatePrime},
		{score: 700, want: RatePrime},
		{score: 699, want: RateStandard},
		{score: 500, want: RateStandard},
		{score: 499, want: RateSubprime},
		{score: 300, want: RateSubprime},
	}

	for _, tc := range cases {
		if got := RateForScore(tc.score); got != tc.want {
			t.Fatalf("RateForScore(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
