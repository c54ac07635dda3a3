package game

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

// Board represents the dynamic state of one Factor Exchange game.
type Board struct {
	maxCard           int
	remaining         CardSet // cards still on the board
	available         CardSet // cards that may be played, always a subset of remaining
	scores            []int64 // player score numerators over divisor
	sink              int64   // sink score numerator over divisor
	current           int
	numPlayers        int
	includeSink       bool
	distribution      Distribution
	divisor           int64
	discardUnplayable bool
}

type BoardOption func(b *Board)

// WithDiscardUnplayable removes dead cards from the board without scoring them.
func WithDiscardUnplayable(discard bool) BoardOption {
	return func(b *Board) {
		b.discardUnplayable = discard
	}
}

// NewBoard initializes a board with cards 1..maxCardValue, of which
// 2..maxCardValue are playable.
func NewBoard(maxCardValue, numPlayers int, includeSink bool, distribution Distribution, options ...BoardOption) (*Board, error) {
	if maxCardValue < 1 {
		return nil, errors.New("max card value must be >= 1")
	}
	if numPlayers < 1 {
		return nil, errors.New("number of players must be >= 1")
	}
	if err := distribution.Validate(); err != nil {
		return nil, fmt.Errorf("invalid distribution: %w", err)
	}

	b := &Board{
		maxCard:      maxCardValue,
		remaining:    NewCardSet(maxCardValue, 1, maxCardValue),
		available:    NewCardSet(maxCardValue, 2, maxCardValue),
		scores:       make([]int64, numPlayers),
		numPlayers:   numPlayers,
		includeSink:  includeSink,
		distribution: append(Distribution(nil), distribution...),
		divisor:      int64(distribution.Divisor()),
	}
	for _, option := range options {
		option(b)
	}
	return b, nil
}

// Copy returns a deep copy of the board. The distribution is shared since it
// is never mutated.
func (b *Board) Copy() *Board {
	scores := make([]int64, len(b.scores))
	copy(scores, b.scores)

	return &Board{
		maxCard:           b.maxCard,
		remaining:         b.remaining.Copy(),
		available:         b.available.Copy(),
		scores:            scores,
		sink:              b.sink,
		current:           b.current,
		numPlayers:        b.numPlayers,
		includeSink:       b.includeSink,
		distribution:      b.distribution,
		divisor:           b.divisor,
		discardUnplayable: b.discardUnplayable,
	}
}

func (b *Board) MaxCardValue() int { return b.maxCard }
func (b *Board) NumPlayers() int   { return b.numPlayers }
func (b *Board) IncludeSink() bool { return b.includeSink }
func (b *Board) CurrentPlayer() int {
	return b.current
}

func (b *Board) Distribution() Distribution {
	return append(Distribution(nil), b.distribution...)
}

// LegalMoves returns the playable cards in ascending order.
func (b *Board) LegalMoves() []int {
	return b.available.Values()
}

// IsLegal reports whether card may be played now.
func (b *Board) IsLegal(card int) bool {
	return b.available.Has(card)
}

// Remaining returns the cards still on the board in ascending order.
func (b *Board) Remaining() []int {
	return b.remaining.Values()
}

func (b *Board) IsTerminal() bool {
	return b.remaining.Len() == 0
}

// IsStalled reports a board that still holds cards but offers no legal move.
// Only the single-card board starts (and stays) this way.
func (b *Board) IsStalled() bool {
	return !b.IsTerminal() && b.available.Len() == 0
}

// Scores returns the player scores, followed by the sink score when the board
// has a sink.
func (b *Board) Scores() []Score {
	n := len(b.scores)
	if b.includeSink {
		n++
	}
	scores := make([]Score, 0, n)
	for _, num := range b.scores {
		scores = append(scores, Score{Num: num, Den: b.divisor})
	}
	if b.includeSink {
		scores = append(scores, Score{Num: b.sink, Den: b.divisor})
	}
	return scores
}

// Hash identifies the board position: card sets and mover. Scores are not
// part of the position.
func (b *Board) Hash() StateHash {
	buf := make([]byte, 0, b.maxCard+16)
	for v := 1; v <= b.maxCard; v++ {
		var flags byte
		if b.remaining.Has(v) {
			flags |= 1
		}
		if b.available.Has(v) {
			flags |= 2
		}
		buf = append(buf, flags)
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(b.current))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(b.numPlayers))
	return StateHash(xxhash.Sum64(buf))
}

func (b *Board) String() string {
	return fmt.Sprintf("Board{remaining=%v available=%v scores=%v player=%d}", b.Remaining(), b.LegalMoves(), b.Scores(), b.current)
}
