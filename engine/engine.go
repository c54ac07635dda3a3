package engine

import (
	"context"

	"factorx/game"
)

type Engine interface {
	// Run plays the game until no card is left and returns the result
	Run(ctx context.Context) (Result, error)
}

// Update is one played turn and the position it led to.
type Update struct {
	Turn   game.Turn
	Hash   game.StateHash
	Scores []game.Score
}

type Result struct {
	Scores  []game.Score
	Moves   []int
	Winner  int
	Updates []Update
}
