package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("enumerate", 4, 1)
	c.AddNode(0)
	c.AddNode(1)
	c.AddNode(2)
	c.AddNode(1)
	c.AddLeaf()
	c.AddLeaf()

	got := c.Complete()

	require.Equal(t, "enumerate", got.Search)
	require.Equal(t, 4, got.MaxCardValue)
	require.Equal(t, int64(4), got.Nodes)
	require.Equal(t, int64(2), got.Leaves)
	require.Equal(t, 2, got.MaxDepth)
	require.False(t, got.StartTime.IsZero())
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("solve", 4, 1)
	c.AddNode(3)
	c.AddLeaf()
	require.Equal(t, SearchMetric{}, c.Complete())
}

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "metrics.csv")
	w, err := NewWriter(path)
	require.NoError(t, err)

	record := SearchMetric{Search: "best", MaxCardValue: 6, NumPlayers: 2, Nodes: 10, Leaves: 4, MaxDepth: 3}
	require.NoError(t, w.WriteSearchMetrics([]SearchMetric{record}))
	require.NoError(t, w.WriteSearchMetrics([]SearchMetric{record}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3, "header is written once")
	require.Equal(t, "search", rows[0][0])
	require.Equal(t, []string{"best", "6", "2"}, rows[1][:3])
	require.Equal(t, []string{"10", "4", "3"}, rows[2][5:])
}
