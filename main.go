package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"onitama/config"
	"onitama/display"
	"onitama/engine"
	"onitama/experiments"
	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/player"
	"onitama/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const usage = `usage: onitama <command> [flags]

commands:
  play        play one game and draw every move
  experiment  run bot-vs-bot matchups and store CSV records
  config      write the default config to the user config directory
`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = play(os.Args[2:])
	case "experiment":
		err = experiment(os.Args[2:])
	case "config":
		err = writeConfig()
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", os.Args[1])
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}

func now() int64 {
	return time.Now().UnixNano()
}

func play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	cfgPath := fs.String("config", "", "config file, defaults to the XDG config directory")
	red := fs.String("red", "bot", "red agent: bot or random")
	blue := fs.String("blue", "bot", "blue agent: bot or random")
	seed := fs.Uint64("seed", 0, "random seed, overrides the config")
	iterations := fs.Int("iterations", 0, "playouts per decision, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *iterations > 0 {
		cfg.Search.Iterations = *iterations
	}
	zerolog.SetGlobalLevel(cfg.Level())

	deck, err := cfg.Deck()
	if err != nil {
		return err
	}
	rng := cfg.Rand(now)

	redAgent, err := newAgent(*red, game.Red, cfg, rng)
	if err != nil {
		return err
	}
	blueAgent, err := newAgent(*blue, game.Blue, cfg, rng)
	if err != nil {
		return err
	}

	var options []display.Option
	if !cfg.Color {
		options = append(options, display.WithProfile(termenv.Ascii))
	}
	renderer := display.New(os.Stdout, options...)

	e := engine.NewLocal(deck, rng, redAgent, blueAgent,
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithObserver(renderer.Observe),
	)
	result, err := e.Run()
	if err != nil {
		return err
	}

	log.Info().Msgf("game over after %d turns: %s", result.Turns, result.Status)
	return nil
}

func newAgent(kind string, side game.Side, cfg *config.Config, rng *rand.Rand) (engine.Agent, error) {
	switch kind {
	case "bot":
		options := append(cfg.SearchOptions(), searcher.WithRand(rand.New(rand.NewSource(rng.Uint64()))))
		return player.NewBot(side, options...), nil
	case "random":
		return player.NewRandom(side, rand.New(rand.NewSource(rng.Uint64()))), nil
	}
	return nil, fmt.Errorf("unknown agent %q for %s", kind, side)
}

func experiment(args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	cfgPath := fs.String("config", "", "config file, defaults to the XDG config directory")
	name := fs.String("name", "iterations", "experiment: iterations, max_plies or exploration")
	games := fs.Int("games", 0, "games per matchup, overrides the config")
	out := fs.String("out", "", "output directory, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *out != "" {
		cfg.OutputDir = *out
	}
	zerolog.SetGlobalLevel(cfg.Level())

	deck, err := cfg.Deck()
	if err != nil {
		return err
	}
	s := experiments.Settings{
		Root:     cfg.OutputDir,
		Games:    cfg.Games,
		MaxTurns: cfg.MaxTurns,
		Deck:     deck,
		Rand:     cfg.Rand(now),
		Evaluate: cfg.EvaluationFn(),
		Baseline: metrics.AgentConfig{
			Iterations:  cfg.Search.Iterations,
			MaxPlies:    cfg.Search.MaxPlies,
			Exploration: cfg.Search.Exploration,
		},
	}

	runs := map[string]func(experiments.Settings) (string, error){
		"iterations":  experiments.RunIterationsExperiment,
		"max_plies":   experiments.RunPliesExperiment,
		"exploration": experiments.RunExplorationExperiment,
	}
	run, ok := runs[*name]
	if !ok {
		return fmt.Errorf("unknown experiment %q", *name)
	}
	dir, err := run(s)
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}

func writeConfig() error {
	cfg := config.DefaultConfig
	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
