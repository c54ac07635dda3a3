package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"factorx/game"
	"factorx/meta"
)

// Config describes one Factor Exchange board and how searches over it report.
type Config struct {
	// MaxCardValue is the board size: cards 1..MaxCardValue.
	MaxCardValue int `yaml:"max_card_value"`

	// NumPlayers is the number of seats taking turns.
	NumPlayers int `yaml:"num_players"`

	// IncludeSink routes factor points for seats past the last player to a
	// sink instead of wrapping around to the players.
	IncludeSink bool `yaml:"include_sink"`

	// EvenGain spreads factor points across every other player instead of
	// giving them all to the next player.
	EvenGain bool `yaml:"even_gain"`

	// DiscardUnplayable removes dead cards without scoring them.
	DiscardUnplayable bool `yaml:"discard_unplayable"`

	// ProgressEvery logs a debug line every N search leaves. Zero disables it.
	ProgressEvery int `yaml:"progress_every"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		MaxCardValue:      meta.MAX_CARD_VALUE,
		NumPlayers:        meta.NUM_PLAYERS,
		IncludeSink:       meta.INCLUDE_SINK,
		EvenGain:          meta.EVEN_GAIN,
		DiscardUnplayable: meta.DISCARD_UNPLAYABLE,
		ProgressEvery:     meta.PROGRESS_EVERY,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate ensures the configuration describes a playable board.
func (c Config) Validate() error {
	if c.MaxCardValue < 1 {
		return errors.New("max card value must be >= 1")
	}
	if c.NumPlayers < 1 {
		return errors.New("number of players must be >= 1")
	}
	if c.ProgressEvery < 0 {
		return errors.New("progress interval cannot be negative")
	}
	return nil
}

// Distribution returns the factor point routing table selected by EvenGain.
func (c Config) Distribution() game.Distribution {
	if c.EvenGain {
		return game.EvenGainDistribution(c.NumPlayers)
	}
	return game.NextPlayerDistribution()
}

// NewBoard validates the configuration and builds its initial board.
func (c Config) NewBoard() (*game.Board, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return game.NewBoard(c.MaxCardValue, c.NumPlayers, c.IncludeSink, c.Distribution(),
		game.WithDiscardUnplayable(c.DiscardUnplayable))
}
