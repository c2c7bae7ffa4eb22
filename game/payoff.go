package game

import "math"

// Score is a ready-made integer payoff for numeric evaluators.
type Score int

// Score sentinels. ScoreMin is the negation of ScoreMax rather than the
// minimum of the underlying type, so every score in [ScoreMin, ScoreMax]
// has a representable negation.
const (
	ScoreMax Score = math.MaxInt32
	ScoreMin Score = -ScoreMax
)

// Compare orders scores numerically.
func (s Score) Compare(other Score) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// Negate returns the additive inverse.
func (s Score) Negate() Score {
	return -s
}
