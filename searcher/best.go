package searcher

import (
	"context"
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"factorx/game"
	"factorx/utils"
)

// BestPlays holds, per player (sink excluded), the highest score reached by
// any complete game and every way of reaching it. Two lines that play the
// same cards in a different order count once.
type BestPlays struct {
	Scores []game.Score
	Plays  [][][]int
}

type bestTracker struct {
	best  []game.Score
	plays [][][]int
	index []map[uint64][]int // multiset hash -> positions in plays
}

func newBestTracker(numPlayers int) *bestTracker {
	t := &bestTracker{
		best:  make([]game.Score, numPlayers),
		plays: make([][][]int, numPlayers),
		index: make([]map[uint64][]int, numPlayers),
	}
	for i := range t.best {
		t.best[i] = game.NewScore(0)
		t.plays[i] = [][]int{}
		t.index[i] = map[uint64][]int{}
	}
	return t
}

// multisetKey hashes the sorted moves, so permutations share a key.
func multisetKey(moves []int) uint64 {
	buf := make([]byte, 0, len(moves)*2)
	for _, m := range utils.SortedCopy(moves) {
		buf = binary.AppendUvarint(buf, uint64(m))
	}
	return xxhash.Sum64(buf)
}

func (t *bestTracker) record(o Outcome) {
	key := multisetKey(o.Moves)
	for player := range t.best {
		cmp := o.Scores[player].Cmp(t.best[player])
		if cmp < 0 {
			continue
		}
		if cmp > 0 {
			log.Debug().Int("player", player).Str("score", o.Scores[player].String()).Ints("moves", o.Moves).Msg("new best score")
			t.best[player] = o.Scores[player]
			t.plays[player] = [][]int{}
			t.index[player] = map[uint64][]int{}
		}
		if t.seen(player, key, o.Moves) {
			continue
		}
		t.index[player][key] = append(t.index[player][key], len(t.plays[player]))
		t.plays[player] = append(t.plays[player], o.Moves)
	}
}

func (t *bestTracker) seen(player int, key uint64, moves []int) bool {
	for _, i := range t.index[player][key] {
		if utils.SameMultiset(t.plays[player][i], moves) {
			return true
		}
	}
	return false
}

// Best walks every complete game from board and keeps each player's best
// score together with the distinct card multisets that reach it, in the
// order they were first found.
func Best(ctx context.Context, board *game.Board, options ...Option) (BestPlays, error) {
	s := newSearch("best", board, options)
	tracker := newBestTracker(board.NumPlayers())

	err := s.walk(ctx, board, nil, func(o Outcome) error {
		tracker.record(o)
		return nil
	})
	if err != nil {
		return BestPlays{}, err
	}
	return BestPlays{Scores: tracker.best, Plays: tracker.plays}, nil
}
