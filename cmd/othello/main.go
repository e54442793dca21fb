package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"othello/config"
	"othello/engine"
	"othello/game"
	"othello/othello"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file")
	moves := flag.String("moves", "", `Comma separated moves to replay, e.g. "d3,c5,pass"`)
	seed := flag.Uint64("seed", 0, "Seed for random playouts (overrides config)")
	maxMoves := flag.Int("max-moves", 0, "Maximum number of moves (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *maxMoves > 0 {
		cfg.MaxMoves = *maxMoves
	}
	setupLogger(cfg)

	if err := run(cfg, *moves); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func run(cfg *config.Config, moves string) error {
	registry := game.NewRegistry()
	if err := othello.Register(registry); err != nil {
		return err
	}
	g, err := registry.Load(othello.GameType.ShortName, nil)
	if err != nil {
		return err
	}

	policies, err := newPolicies(cfg.Seed, moves)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := engine.New(g.NewInitialState(), policies,
		engine.WithMaxMoves(cfg.MaxMoves),
		engine.WithPassAction(othello.PassAction),
	)
	result, err := e.Run(ctx)
	if errors.Is(err, engine.ErrScriptExhausted) {
		log.Info().Msgf("replayed all %d moves", result.Moves)
	} else if err != nil {
		return err
	}

	fmt.Println(result.Final.ObservationString(game.Player(cfg.Perspective)))
	fmt.Println(strings.Join(result.Transcript, " "))
	fmt.Printf("moves: %d, passes: %d, flips: %d, returns: %v\n",
		result.Moves, result.Passes, result.Flips, result.Returns)
	return nil
}

// newPolicies replays moves alternately for black and white when given, and
// plays uniformly at random otherwise.
func newPolicies(seed uint64, moves string) ([]engine.Policy, error) {
	if moves == "" {
		return []engine.Policy{engine.Uniform(seed), engine.Uniform(seed + 1)}, nil
	}

	var scripts [othello.NumPlayers][]game.Action
	for i, text := range strings.Split(moves, ",") {
		action, err := othello.ParseAction(text)
		if err != nil {
			return nil, err
		}
		scripts[i%othello.NumPlayers] = append(scripts[i%othello.NumPlayers], action)
	}
	return []engine.Policy{engine.Scripted(scripts[0]...), engine.Scripted(scripts[1]...)}, nil
}
