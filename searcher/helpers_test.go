package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"factorx/game"
)

func newBoard(t *testing.T, maxCard, players int, sink bool, d game.Distribution) *game.Board {
	t.Helper()
	b, err := game.NewBoard(maxCard, players, sink, d)
	require.NoError(t, err)
	return b
}

func nextPlayer() game.Distribution {
	return game.NextPlayerDistribution()
}

func render(scores []game.Score) []string {
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.String()
	}
	return out
}
