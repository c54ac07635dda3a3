package game

import (
	"math/big"
	"strings"
)

// Score is an exact rational Num/Den. All scores on one board share the
// distribution divisor as denominator.
type Score struct {
	Num int64
	Den int64
}

// NewScore returns the whole-number score v.
func NewScore(v int64) Score {
	return Score{Num: v, Den: 1}
}

func (s Score) den() int64 {
	if s.Den == 0 {
		return 1
	}
	return s.Den
}

// Cmp compares s and o and returns -1, 0 or +1.
func (s Score) Cmp(o Score) int {
	if s.den() == o.den() {
		switch {
		case s.Num < o.Num:
			return -1
		case s.Num > o.Num:
			return 1
		}
		return 0
	}
	return s.Rat().Cmp(o.Rat())
}

func (s Score) Sign() int {
	switch {
	case s.Num < 0:
		return -1
	case s.Num > 0:
		return 1
	}
	return 0
}

func (s Score) Rat() *big.Rat {
	return big.NewRat(s.Num, s.den())
}

func (s Score) Float64() float64 {
	f, _ := s.Rat().Float64()
	return f
}

// String renders whole scores as integers and the rest as trimmed decimals.
func (s Score) String() string {
	r := s.Rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return strings.TrimSuffix(strings.TrimRight(r.FloatString(6), "0"), ".")
}

// SumScores adds scores exactly.
func SumScores(scores []Score) *big.Rat {
	total := new(big.Rat)
	for _, s := range scores {
		total.Add(total, s.Rat())
	}
	return total
}

// Winner returns the index of the unique highest score, or -1 when the top
// score is shared or every score is zero.
func Winner(scores []Score) int {
	winner := -1
	best := NewScore(0)
	for i, score := range scores {
		switch score.Cmp(best) {
		case 1:
			best = score
			winner = i
		case 0:
			winner = -1
		}
	}
	return winner
}
