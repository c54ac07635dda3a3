package game

import "errors"

// ErrIllegalMove is returned when a card outside the available set is played.
var ErrIllegalMove = errors.New("illegal move")

// StateHash identifies a board position (card sets and mover).
type StateHash uint64
