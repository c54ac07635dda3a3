package searcher

import (
	"context"

	"github.com/rs/zerolog/log"

	"factorx/game"
	"factorx/utils"
)

// Solution is the line chosen by backward induction and the scores it ends
// with.
type Solution struct {
	Scores []game.Score
	Moves  []int
}

// Winner returns the index of the unique highest score, sink included, or -1
// when the top score is shared or nobody scored.
func (s Solution) Winner() int {
	return game.Winner(s.Scores)
}

// Solve computes perfect self-interested play from board: every mover picks
// the move that maximises their own final score, assuming every later mover
// does the same. Ties keep the smallest card.
func Solve(ctx context.Context, board *game.Board, options ...Option) (Solution, error) {
	s := newSearch("solve", board, options)
	solution, err := s.solve(ctx, board, 0)
	if err != nil {
		return Solution{}, err
	}
	log.Debug().Ints("moves", solution.Moves).Int("winner", solution.Winner()).Msg("solved")
	return solution, nil
}

func (s *search) solve(ctx context.Context, board *game.Board, depth int) (Solution, error) {
	if err := s.visitNode(ctx, depth); err != nil {
		return Solution{}, err
	}

	if isLeaf(board) {
		s.visitLeaf(nil)
		return Solution{Scores: board.Scores(), Moves: []int{}}, nil
	}

	mover := board.CurrentPlayer()
	bestMove := 0
	var best Solution
	for _, move := range board.LegalMoves() {
		next := board.Copy()
		if _, err := next.TakeTurn(move); err != nil {
			return Solution{}, err
		}
		sub, err := s.solve(ctx, next, depth+1)
		if err != nil {
			return Solution{}, err
		}
		// The first move is always kept so that a move is chosen even when
		// nothing scores for the mover.
		if best.Scores == nil || sub.Scores[mover].Cmp(best.Scores[mover]) > 0 {
			bestMove = move
			best = sub
		}
	}

	return Solution{Scores: best.Scores, Moves: utils.Prepend(bestMove, best.Moves)}, nil
}
