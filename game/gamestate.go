package game

import (
	"fmt"
)

// TakeTurn plays card for the current player, runs the elimination cascade,
// distributes the collected factor points and passes the turn. The board is
// left untouched when card is not a legal move.
func (b *Board) TakeTurn(card int) (Turn, error) {
	if !b.available.Has(card) {
		return Turn{}, fmt.Errorf("card %d is not available: %w", card, ErrIllegalMove)
	}

	turn := Turn{Player: b.current, Card: card}

	b.scores[b.current] += int64(card) * b.divisor
	b.removeCard(card)

	turn.Factors, turn.Dead, turn.Points = b.cascade(card)
	b.distribute(int64(turn.Points))

	b.current = (b.current + 1) % b.numPlayers
	return turn, nil
}

// cascade peels the factors of card, refreshes availability and sweeps dead
// cards, returning what it removed and the points collected.
func (b *Board) cascade(card int) (factors, dead []int, points int) {
	for d := 1; d <= card/2; d++ {
		if card%d == 0 && b.remaining.Has(d) {
			factors = append(factors, d)
			points += d
			b.removeCard(d)
		}
	}

	// Cards without factors can no longer collect anything; they stay on the
	// board until they also lose every multiple.
	for _, c := range b.available.Values() {
		if !hasFactorIn(c, b.remaining) {
			b.available.Remove(c)
		}
	}

	bound := b.remaining.Max()
	for _, c := range b.remaining.Values() {
		if hasFactorIn(c, b.remaining) || hasMultipleIn(c, bound, b.remaining) {
			continue
		}
		dead = append(dead, c)
		if !b.discardUnplayable {
			points += c
		}
		b.removeCard(c)
	}
	return factors, dead, points
}

func (b *Board) distribute(points int64) {
	if points == 0 {
		return
	}
	// Scores are kept over divisor, so each share is simply points*weight.
	for _, share := range b.distribution {
		amount := points * int64(share.Weight)
		if idx := share.recipient(b.current, b.numPlayers, b.includeSink); idx < 0 {
			b.sink += amount
		} else {
			b.scores[idx] += amount
		}
	}
}

func (b *Board) removeCard(card int) {
	b.remaining.Remove(card)
	b.available.Remove(card)
}
