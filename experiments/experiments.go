package experiments

import (
	"fmt"

	"onitama/engine"
	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/meta"
	"onitama/player"
	"onitama/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Settings shared by every game of an experiment.
type Settings struct {
	Root     string // Directory the CSV files are written under
	Games    int    // Per match up
	MaxTurns int
	Deck     []game.Card
	Rand     *rand.Rand
	Evaluate game.Evaluate
	Baseline metrics.AgentConfig // Sweeps vary one parameter of it, zero fields take the meta defaults
}

func (s Settings) withDefaults() Settings {
	if s.Games <= 0 {
		s.Games = meta.NUM_GAMES
	}
	if s.MaxTurns <= 0 {
		s.MaxTurns = meta.MAX_TURNS
	}
	if s.Deck == nil {
		s.Deck = game.StandardDeck()
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(1))
	}
	if s.Evaluate == nil {
		s.Evaluate = game.EvaluateMaterial
	}
	if s.Baseline.Iterations <= 0 {
		s.Baseline.Iterations = meta.ITERATIONS
	}
	if s.Baseline.MaxPlies <= 0 {
		s.Baseline.MaxPlies = meta.MAX_PLIES
	}
	if s.Baseline.Exploration <= 0 {
		s.Baseline.Exploration = meta.EXPLORATION
	}
	s.Baseline.ID = 0
	return s
}

// RunIterationsExperiment pairs the baseline agent against agents with larger
// and smaller iteration budgets.
func RunIterationsExperiment(s Settings) (string, error) {
	s = s.withDefaults()
	baseline := s.Baseline
	configs := []metrics.AgentConfig{
		{ID: 1, Iterations: 10, MaxPlies: baseline.MaxPlies, Exploration: baseline.Exploration},
		{ID: 2, Iterations: 100, MaxPlies: baseline.MaxPlies, Exploration: baseline.Exploration},
		{ID: 3, Iterations: 200, MaxPlies: baseline.MaxPlies, Exploration: baseline.Exploration},
	}
	return runAgainstBaseline("iterations", configs, s)
}

// RunPliesExperiment varies how long random playouts run before the position
// is evaluated.
func RunPliesExperiment(s Settings) (string, error) {
	s = s.withDefaults()
	baseline := s.Baseline
	configs := []metrics.AgentConfig{
		{ID: 1, Iterations: baseline.Iterations, MaxPlies: 5, Exploration: baseline.Exploration},
		{ID: 2, Iterations: baseline.Iterations, MaxPlies: 15, Exploration: baseline.Exploration},
		{ID: 3, Iterations: baseline.Iterations, MaxPlies: 60, Exploration: baseline.Exploration},
	}
	return runAgainstBaseline("max_plies", configs, s)
}

func RunExplorationExperiment(s Settings) (string, error) {
	s = s.withDefaults()
	baseline := s.Baseline
	configs := []metrics.AgentConfig{
		{ID: 1, Iterations: baseline.Iterations, MaxPlies: baseline.MaxPlies, Exploration: 0.2},
		{ID: 2, Iterations: baseline.Iterations, MaxPlies: baseline.MaxPlies, Exploration: 1.0},
		{ID: 3, Iterations: baseline.Iterations, MaxPlies: baseline.MaxPlies, Exploration: 1.4},
	}
	return runAgainstBaseline("exploration", configs, s)
}

func runAgainstBaseline(name string, configs []metrics.AgentConfig, s Settings) (string, error) {
	// Each matchup pairs the baseline agent against a variant
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{s.Baseline, config})
	}
	return Run(name, append(configs, s.Baseline), matchUps, s)
}

// Run plays every matchup and stores the agent configs, game records and move
// records under a new experiment directory, which it returns. Sides alternate
// between games so neither config always plays red.
func Run(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, s Settings) (string, error) {
	s = s.withDefaults()
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < s.Games; i++ {
			red, blue := matchup[0], matchup[1]
			if i%2 == 1 {
				red, blue = blue, red
			}

			record, moves, err := runGame(red, blue, s)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().Msgf("completed matchup %d of %d game %d with status: %s", mi+1, len(matchUps), i+1, record.Status)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, configs, gameRecords, moveRecords, s.Root)
}

func store(name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, root string) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays a single game between two agent configs.
func runGame(red, blue metrics.AgentConfig, s Settings) (metrics.GameRecord, []metrics.MoveRecord, error) {
	e := engine.NewLocal(s.Deck, s.Rand,
		newBot(game.Red, red, s),
		newBot(game.Blue, blue, s),
		engine.WithMaxTurns(s.MaxTurns),
	)

	result, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	id := uuid.NewString()
	moves := make([]metrics.MoveRecord, 0, len(result.Moves))
	for _, mm := range result.Moves {
		moves = append(moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return metrics.GameRecord{ID: id, Red: red.ID, Blue: blue.ID, GameMetric: result.Game}, moves, nil
}

func newBot(side game.Side, config metrics.AgentConfig, s Settings) *player.Bot {
	return player.NewBot(side,
		searcher.WithIterations(config.Iterations),
		searcher.WithMaxPlies(config.MaxPlies),
		searcher.WithExploration(config.Exploration),
		searcher.WithEvaluationFn(s.Evaluate),
		searcher.WithRand(rand.New(rand.NewSource(s.Rand.Uint64()))),
		searcher.WithMetrics(),
	)
}
