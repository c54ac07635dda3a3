package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"factorx/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "factorx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 10, cfg.MaxCardValue)
	require.Equal(t, 1, cfg.NumPlayers)
	require.True(t, cfg.IncludeSink)
	require.False(t, cfg.EvenGain)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, "max_card_value: 6\nnum_players: 3\neven_gain: true\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 6, cfg.MaxCardValue)
		require.Equal(t, 3, cfg.NumPlayers)
		require.True(t, cfg.EvenGain)
		require.True(t, cfg.IncludeSink, "missing keys keep defaults")
	})

	t.Run("sink can be disabled", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "include_sink: false\n"))
		require.NoError(t, err)
		require.False(t, cfg.IncludeSink)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "max_card_value: [1, 2\n"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"no cards", func(c *Config) { c.MaxCardValue = 0 }},
		{"no players", func(c *Config) { c.NumPlayers = 0 }},
		{"negative progress", func(c *Config) { c.ProgressEvery = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			require.Error(t, cfg.Validate())
			_, err := cfg.NewBoard()
			require.Error(t, err)
		})
	}
}

func TestDistribution(t *testing.T) {
	cfg := Default()
	require.Equal(t, game.Distribution{{Offset: 1, Weight: 1}}, cfg.Distribution())

	cfg.EvenGain = true
	cfg.NumPlayers = 3
	require.Equal(t, game.Distribution{{Offset: 1, Weight: 1}, {Offset: 2, Weight: 1}}, cfg.Distribution())

	cfg.NumPlayers = 1
	require.Equal(t, game.Distribution{{Offset: 1, Weight: 1}}, cfg.Distribution(), "a lone player falls back to next-player")
}

func TestNewBoard(t *testing.T) {
	cfg := Default()
	cfg.MaxCardValue = 4
	cfg.DiscardUnplayable = true

	b, err := cfg.NewBoard()
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, b.LegalMoves())

	_, err = b.TakeTurn(4)
	require.NoError(t, err)
	require.Equal(t, "3", b.Scores()[1].String(), "dead 3 is discarded")
}
