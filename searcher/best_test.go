package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"factorx/game"
	"factorx/utils"
)

func TestBest(t *testing.T) {
	cases := []struct {
		name    string
		maxCard int
		players int
		sink    bool
		dist    game.Distribution
		scores  []string
		plays   [][][]int
	}{
		{"four card solo", 4, 1, true, nextPlayer(), []string{"7"}, [][][]int{{{3, 4}}}},
		{"six card two players", 6, 2, true, nextPlayer(), []string{"14", "16"}, [][][]int{{{5, 6}}, {{2, 6}}}},
		{"six card three players even gain", 6, 3, true, game.EvenGainDistribution(3),
			[]string{"9.5", "11", "7.5"}, [][][]int{{{5, 6}}, {{2, 6}}, {{5, 4, 6}, {6}}}},
		{"seven card two players no sink", 7, 2, false, nextPlayer(), []string{"16", "23"}, [][][]int{{{7, 6}}, {{2, 6}}}},
		{"permutations collapse", 8, 1, true, nextPlayer(), []string{"21"}, [][][]int{{{7, 6, 8}}}},
		{"ten card two players", 10, 2, true, nextPlayer(), []string{"39", "43"}, [][][]int{{{7, 4, 10, 6}}, {{5, 9, 4}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(t, tc.maxCard, tc.players, tc.sink, tc.dist)

			best, err := Best(context.Background(), b)

			require.NoError(t, err)
			require.Equal(t, tc.scores, render(best.Scores), "sink is not a player")
			require.Equal(t, tc.plays, best.Plays)
		})
	}
}

func TestBestNeverRecordsPermutations(t *testing.T) {
	for _, players := range []int{1, 2, 3} {
		b := newBoard(t, 12, players, true, nextPlayer())

		best, err := Best(context.Background(), b)
		require.NoError(t, err)

		for player, plays := range best.Plays {
			require.NotEmpty(t, plays)
			for i := range plays {
				for j := i + 1; j < len(plays); j++ {
					require.False(t, utils.SameMultiset(plays[i], plays[j]),
						"player %d recorded %v and %v", player, plays[i], plays[j])
				}
			}
		}
	}
}

func TestBestMatchesEnumeration(t *testing.T) {
	b := newBoard(t, 9, 2, true, nextPlayer())

	outcomes, err := Enumerate(context.Background(), b)
	require.NoError(t, err)
	best, err := Best(context.Background(), b)
	require.NoError(t, err)

	for player := range best.Scores {
		top := game.NewScore(0)
		for _, o := range outcomes {
			if o.Scores[player].Cmp(top) > 0 {
				top = o.Scores[player]
			}
		}
		require.Zero(t, top.Cmp(best.Scores[player]))
		for _, play := range best.Plays[player] {
			found := false
			for _, o := range outcomes {
				if utils.SameMultiset(o.Moves, play) && o.Scores[player].Cmp(top) == 0 {
					found = true
					break
				}
			}
			require.True(t, found, "play %v must reach the best score", play)
		}
	}
}

func TestMultisetKey(t *testing.T) {
	require.Equal(t, multisetKey([]int{7, 6, 8}), multisetKey([]int{8, 7, 6}))
	require.NotEqual(t, multisetKey([]int{7, 6, 8}), multisetKey([]int{7, 6}))
}
