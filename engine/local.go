package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"factorx/agent"
	"factorx/game"
)

type LocalEngine struct {
	Board  *game.Board
	Agents []agent.Agent
}

// NewLocalEngine seats one agent per player on board. The engine plays on
// board itself; pass a copy to keep the original.
func NewLocalEngine(board *game.Board, agents []agent.Agent) (*LocalEngine, error) {
	if board == nil {
		return nil, errors.New("board is required")
	}
	if len(agents) != board.NumPlayers() {
		return nil, fmt.Errorf("need %d agents, got %d", board.NumPlayers(), len(agents))
	}
	return &LocalEngine{Board: board, Agents: agents}, nil
}

// Run executes the entire game loop until the board is cleared.
func (e *LocalEngine) Run(ctx context.Context) (Result, error) {
	var updates []Update
	moves := []int{}

	log.Debug().Int("players", e.Board.NumPlayers()).Ints("cards", e.Board.Remaining()).Msg("game starting")

	for !e.Board.IsTerminal() && !e.Board.IsStalled() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		player := e.Board.CurrentPlayer()
		a := e.Agents[player]

		// Agents get a copy so they cannot touch the real board.
		move, err := a.FindMove(ctx, e.Board.Copy())
		if err != nil {
			return Result{}, fmt.Errorf("player %d (%s): %w", player, a.Name(), err)
		}

		turn, err := e.Board.TakeTurn(move)
		if err != nil {
			return Result{}, fmt.Errorf("player %d (%s): %w", player, a.Name(), err)
		}

		log.Debug().Int("player", player).Str("agent", a.Name()).Int("card", move).Ints("factors", turn.Factors).Ints("dead", turn.Dead).Msg("turn played")

		moves = append(moves, move)
		updates = append(updates, Update{Turn: turn, Hash: e.Board.Hash(), Scores: e.Board.Scores()})
	}

	scores := e.Board.Scores()
	return Result{
		Scores:  scores,
		Moves:   moves,
		Winner:  game.Winner(scores),
		Updates: updates,
	}, nil
}

// Replay plays moves in order on board and returns one update per turn. It
// stops at the first illegal move, returning the updates played so far.
func Replay(board *game.Board, moves []int) ([]Update, error) {
	updates := make([]Update, 0, len(moves))
	for i, move := range moves {
		turn, err := board.TakeTurn(move)
		if err != nil {
			return updates, fmt.Errorf("move %d: %w", i+1, err)
		}
		updates = append(updates, Update{Turn: turn, Hash: board.Hash(), Scores: board.Scores()})
	}
	return updates, nil
}
