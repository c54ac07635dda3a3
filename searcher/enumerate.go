package searcher

import (
	"context"

	"factorx/game"
)

// EnumerateFunc plays out every complete game from board and hands each
// outcome to visit as soon as it is reached. Moves are tried in ascending
// order at every ply, so the outcome order is deterministic. board itself is
// never modified.
func EnumerateFunc(ctx context.Context, board *game.Board, visit Visitor, options ...Option) error {
	s := newSearch("enumerate", board, options)
	return s.walk(ctx, board, nil, visit)
}

// Enumerate collects every outcome reachable from board.
func Enumerate(ctx context.Context, board *game.Board, options ...Option) ([]Outcome, error) {
	var outcomes []Outcome
	err := EnumerateFunc(ctx, board, func(o Outcome) error {
		outcomes = append(outcomes, o)
		return nil
	}, options...)
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}
