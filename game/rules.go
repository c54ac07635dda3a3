package game

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Share routes Weight parts of a turn's factor points to the player Offset
// seats after the mover.
type Share struct {
	Offset int
	Weight int
}

// Distribution is the ordered routing table for factor points.
type Distribution []Share

// Validate ensures the distribution can split points.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return errors.New("distribution must have at least one share")
	}
	for i, s := range d {
		if s.Offset < 0 {
			return fmt.Errorf("share[%d] offset must be >= 0", i)
		}
		if s.Weight <= 0 {
			return fmt.Errorf("share[%d] weight must be > 0", i)
		}
	}
	return nil
}

// Divisor is the sum of all weights.
func (d Distribution) Divisor() int {
	return lo.SumBy(d, func(s Share) int { return s.Weight })
}

// recipient returns the player index a share lands on, or -1 for the sink.
func (s Share) recipient(mover, numPlayers int, includeSink bool) int {
	if s.Offset >= numPlayers && includeSink {
		return -1
	}
	return (mover + s.Offset) % numPlayers
}
