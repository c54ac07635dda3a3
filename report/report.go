package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"factorx/engine"
	"factorx/game"
	"factorx/searcher"
)

func scoreStrings(scores []game.Score) []string {
	return lo.Map(scores, func(s game.Score, _ int) string { return s.String() })
}

func moveStrings(moves []int) []string {
	return lo.Map(moves, func(m int, _ int) string { return strconv.Itoa(m) })
}

// bracketed renders items like a list literal: [a, b, c].
func bracketed(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// Outcome renders one enumerated game as "s1,s2, ,m1,m2".
func Outcome(o searcher.Outcome) string {
	return strings.Join(scoreStrings(o.Scores), ",") + ", ," + strings.Join(moveStrings(o.Moves), ",")
}

func WriteOutcome(w io.Writer, o searcher.Outcome) error {
	_, err := fmt.Fprintln(w, Outcome(o))
	return err
}

// WriteSolution prints the final scores, the chosen line and the winner.
func WriteSolution(w io.Writer, s searcher.Solution) error {
	_, err := fmt.Fprintf(w, "%s\n%s\nThe winner is %d\n",
		bracketed(scoreStrings(s.Scores)), bracketed(moveStrings(s.Moves)), s.Winner())
	return err
}

// WriteBest prints each player's best score and, one bracketed group per
// player, the distinct lines reaching it.
func WriteBest(w io.Writer, b searcher.BestPlays) error {
	groups := lo.Map(b.Plays, func(plays [][]int, _ int) string {
		return bracketed(lo.Map(plays, func(p []int, _ int) string { return bracketed(moveStrings(p)) }))
	})
	_, err := fmt.Fprintf(w, "Best scores: %s\nBest plays: %s\n",
		strings.Join(scoreStrings(b.Scores), ", "), strings.Join(groups, "; "))
	return err
}

// Update renders one played turn.
func Update(u engine.Update) string {
	return fmt.Sprintf("player %d plays %d: factors %s, dead %s, %d points -> %s",
		u.Turn.Player, u.Turn.Card, bracketed(moveStrings(u.Turn.Factors)), bracketed(moveStrings(u.Turn.Dead)),
		u.Turn.Points, strings.Join(scoreStrings(u.Scores), ", "))
}

func WriteUpdates(w io.Writer, updates []engine.Update) error {
	for _, u := range updates {
		if _, err := fmt.Fprintln(w, Update(u)); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult prints a finished playout: its trace, final scores and winner.
func WriteResult(w io.Writer, r engine.Result) error {
	if err := WriteUpdates(w, r.Updates); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\nThe winner is %d\n",
		bracketed(scoreStrings(r.Scores)), bracketed(moveStrings(r.Moves)), r.Winner)
	return err
}

// ParseMoves reads a comma or space separated card list such as "3,4".
func ParseMoves(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	moves := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid card %q: %w", f, err)
		}
		moves = append(moves, v)
	}
	return moves, nil
}
