package searcher

import (
	"context"

	"github.com/rs/zerolog/log"

	"factorx/game"
	"factorx/metrics"
)

// Outcome is one complete game: final scores (sink last, when present) and
// the cards played in order.
type Outcome struct {
	Scores []game.Score
	Moves  []int
}

// Visitor receives outcomes leaf by leaf. Returning an error stops the search.
type Visitor func(Outcome) error

// search holds the per-run bookkeeping shared by every strategy. Searches are
// exhaustive and their cost grows exponentially with the board size, so
// callers must bound the max card value and player count.
type search struct {
	collector     metrics.Collector
	progressEvery int
	leaves        int64
}

func newSearch(name string, board *game.Board, options []Option) *search {
	s := &search{ // Default values
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	s.collector.Start(name, board.MaxCardValue(), board.NumPlayers())
	return s
}

// isLeaf reports whether the board ends a line of play. A stalled board has
// cards left but nothing to play, so it is treated like a finished game.
func isLeaf(board *game.Board) bool {
	return board.IsTerminal() || board.IsStalled()
}

func (s *search) visitNode(ctx context.Context, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.collector.AddNode(depth)
	return nil
}

func (s *search) visitLeaf(path []int) {
	s.collector.AddLeaf()
	s.leaves++
	if s.progressEvery > 0 && s.leaves%int64(s.progressEvery) == 0 {
		log.Debug().Int64("leaves", s.leaves).Ints("path", path).Msg("search progress")
	}
}

// walk visits every outcome reachable from board in ascending move order.
// path is the line played so far; it is reused across siblings and copied
// into each outcome.
func (s *search) walk(ctx context.Context, board *game.Board, path []int, visit Visitor) error {
	if err := s.visitNode(ctx, len(path)); err != nil {
		return err
	}

	if isLeaf(board) {
		s.visitLeaf(path)
		return visit(Outcome{Scores: board.Scores(), Moves: append([]int{}, path...)})
	}

	for _, move := range board.LegalMoves() {
		next := board.Copy()
		if _, err := next.TakeTurn(move); err != nil {
			return err
		}
		if err := s.walk(ctx, next, append(path, move), visit); err != nil {
			return err
		}
	}
	return nil
}
