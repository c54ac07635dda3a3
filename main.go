package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"factorx/agent"
	"factorx/config"
	"factorx/engine"
	"factorx/game"
	"factorx/metrics"
	"factorx/report"
	"factorx/searcher"
)

// Globals are shared by every command. Zero values leave the config file (or
// the built-in default) in place.
type Globals struct {
	Debug             bool   `help:"enable debug logging"`
	Config            string `help:"YAML file with board settings" type:"path"`
	MaxCardValue      int    `short:"m" help:"number of cards on the board (default: 10)"`
	NumPlayers        int    `short:"n" help:"number of players (default: 1)"`
	WithoutSink       bool   `help:"play without a sink for factor points"`
	EvenGain          bool   `help:"spread factor points across all other players instead of the next one"`
	DiscardUnplayable bool   `help:"remove dead cards without scoring them"`
	ProgressEvery     int    `help:"log search progress every N finished games (needs --debug)"`
	MetricsOut        string `help:"append search metrics to this CSV file" type:"path"`
}

var cli struct {
	Globals

	Plays  PlaysCmd  `cmd:"" help:"list every possible game with its final scores"`
	Solve  SolveCmd  `cmd:"" help:"find the perfect-play line where every player maximises their own score"`
	Best   BestCmd   `cmd:"" help:"find each player's best achievable score and the plays reaching it"`
	Play   PlayCmd   `cmd:"" help:"play one game with automated agents"`
	Replay ReplayCmd `cmd:"" help:"play a fixed sequence of cards and print each turn"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("factorx"),
		kong.Description("Factor Exchange game solver"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	if err := ctx.Run(&cli.Globals); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", ctx.Command())
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

// resolve merges the config file and flags into a validated config.
func (g *Globals) resolve() (config.Config, error) {
	cfg := config.Default()
	if g.Config != "" {
		loaded, err := config.Load(g.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if g.MaxCardValue != 0 {
		cfg.MaxCardValue = g.MaxCardValue
	}
	if g.NumPlayers != 0 {
		cfg.NumPlayers = g.NumPlayers
	}
	if g.WithoutSink {
		cfg.IncludeSink = false
	}
	if g.EvenGain {
		cfg.EvenGain = true
	}
	if g.DiscardUnplayable {
		cfg.DiscardUnplayable = true
	}
	if g.ProgressEvery != 0 {
		cfg.ProgressEvery = g.ProgressEvery
	}
	return cfg, cfg.Validate()
}

func (g *Globals) board() (config.Config, *game.Board, error) {
	cfg, err := g.resolve()
	if err != nil {
		return cfg, nil, fmt.Errorf("config: %w", err)
	}
	b, err := cfg.NewBoard()
	if err != nil {
		return cfg, nil, fmt.Errorf("board: %w", err)
	}
	log.Debug().Int("max_card_value", cfg.MaxCardValue).Int("num_players", cfg.NumPlayers).Bool("include_sink", cfg.IncludeSink).Bool("even_gain", cfg.EvenGain).Msg("board ready")
	return cfg, b, nil
}

// searchOptions wires progress logging and, with --metrics-out, a collector
// whose result is written by the returned flush function.
func (g *Globals) searchOptions(cfg config.Config) ([]searcher.Option, func() error) {
	options := []searcher.Option{searcher.WithProgressEvery(cfg.ProgressEvery)}
	if g.MetricsOut == "" {
		return options, func() error { return nil }
	}

	collector := metrics.NewCollector()
	options = append(options, searcher.WithCollector(collector))
	return options, func() error {
		metric := collector.Complete()
		log.Info().Str("search", metric.Search).Int64("nodes", metric.Nodes).Int64("leaves", metric.Leaves).Dur("duration", metric.Duration).Msg("search finished")
		w, err := metrics.NewWriter(g.MetricsOut)
		if err != nil {
			return err
		}
		return w.WriteSearchMetrics([]metrics.SearchMetric{metric})
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type PlaysCmd struct{}

func (c *PlaysCmd) Run(g *Globals) error {
	cfg, b, err := g.board()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	options, flush := g.searchOptions(cfg)
	err = searcher.EnumerateFunc(ctx, b, func(o searcher.Outcome) error {
		return report.WriteOutcome(out, o)
	}, options...)
	if err != nil {
		return err
	}
	return flush()
}

type SolveCmd struct{}

func (c *SolveCmd) Run(g *Globals) error {
	cfg, b, err := g.board()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	options, flush := g.searchOptions(cfg)
	solution, err := searcher.Solve(ctx, b, options...)
	if err != nil {
		return err
	}
	if err := report.WriteSolution(os.Stdout, solution); err != nil {
		return err
	}
	return flush()
}

type BestCmd struct{}

func (c *BestCmd) Run(g *Globals) error {
	cfg, b, err := g.board()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	options, flush := g.searchOptions(cfg)
	best, err := searcher.Best(ctx, b, options...)
	if err != nil {
		return err
	}
	if err := report.WriteBest(os.Stdout, best); err != nil {
		return err
	}
	return flush()
}

type PlayCmd struct {
	Agents []string `help:"agent per seat (perfect, greedy, random); the last one fills the remaining seats" default:"perfect"`
	Seed   uint64   `help:"seed for random agents; seat i uses seed+i" default:"1"`
}

func (c *PlayCmd) Run(g *Globals) error {
	_, b, err := g.board()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	if len(c.Agents) == 0 {
		return fmt.Errorf("at least one agent is required")
	}
	agents := make([]agent.Agent, b.NumPlayers())
	for i := range agents {
		name := c.Agents[len(c.Agents)-1]
		if i < len(c.Agents) {
			name = c.Agents[i]
		}
		if agents[i], err = agent.New(name, c.Seed+uint64(i)); err != nil {
			return err
		}
	}

	e, err := engine.NewLocalEngine(b, agents)
	if err != nil {
		return err
	}
	result, err := e.Run(ctx)
	if err != nil {
		return err
	}
	return report.WriteResult(os.Stdout, result)
}

type ReplayCmd struct {
	Moves string `arg:"" help:"cards to play in order, e.g. 3,4"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	_, b, err := g.board()
	if err != nil {
		return err
	}
	moves, err := report.ParseMoves(c.Moves)
	if err != nil {
		return err
	}

	updates, err := engine.Replay(b, moves)
	if werr := report.WriteUpdates(os.Stdout, updates); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}
	if !b.IsTerminal() {
		log.Info().Ints("legal_moves", b.LegalMoves()).Msg("game not finished")
	}
	return nil
}
