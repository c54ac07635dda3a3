package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"factorx/game"
	"factorx/searcher"
)

var ErrNoMoves = errors.New("no legal moves")

// Agent picks the card the current player plays next.
type Agent interface {
	Name() string
	FindMove(ctx context.Context, board *game.Board) (int, error)
}

// New builds the agent called name. seed only matters for "random".
func New(name string, seed uint64, options ...searcher.Option) (Agent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "perfect":
		return NewPerfect(options...), nil
	case "greedy":
		return NewGreedy(), nil
	case "random":
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent %q (want perfect, greedy or random)", name)
	}
}

// Perfect plays the first move of the backward induction line from the
// current board.
type Perfect struct {
	options []searcher.Option
}

func NewPerfect(options ...searcher.Option) *Perfect {
	return &Perfect{options: options}
}

func (p *Perfect) Name() string { return "perfect" }

func (p *Perfect) FindMove(ctx context.Context, board *game.Board) (int, error) {
	solution, err := searcher.Solve(ctx, board, p.options...)
	if err != nil {
		return 0, err
	}
	if len(solution.Moves) == 0 {
		return 0, ErrNoMoves
	}
	return solution.Moves[0], nil
}

// Greedy plays the card that raises the mover's own score the most this
// turn. Ties go to the smallest card.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Name() string { return "greedy" }

type candidate struct {
	card int
	gain game.Score
}

func (g *Greedy) FindMove(ctx context.Context, board *game.Board) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, ErrNoMoves
	}

	mover := board.CurrentPlayer()
	before := board.Scores()[mover]
	candidates := make([]candidate, 0, len(moves))
	for _, move := range moves {
		next := board.Copy()
		if _, err := next.TakeTurn(move); err != nil {
			return 0, err
		}
		after := next.Scores()[mover]
		candidates = append(candidates, candidate{card: move, gain: game.Score{Num: after.Num - before.Num, Den: after.Den}})
	}

	best := lo.MaxBy(candidates, func(a, b candidate) bool {
		return a.gain.Cmp(b.gain) > 0
	})
	return best.card, nil
}

// Random plays a uniformly chosen legal card from a seeded source.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) FindMove(ctx context.Context, board *game.Board) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, ErrNoMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}
