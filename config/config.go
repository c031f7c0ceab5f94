package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"onitama/game"
	"onitama/meta"
	"onitama/searcher"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile = "onitama/config.yaml"

	ErrInvalidConfig = errors.New("invalid config")
)

var evaluations = map[string]game.Evaluate{
	"material":      game.EvaluateMaterial,
	"master_safety": game.EvaluateMasterSafety,
}

type SearchConfig struct {
	Iterations  int     `yaml:"iterations"`
	MaxPlies    int     `yaml:"max_plies"`
	Exploration float64 `yaml:"exploration"`
	Evaluation  string  `yaml:"evaluation"`
}

type Config struct {
	Search    SearchConfig `yaml:"search"`
	Seed      uint64       `yaml:"seed"` // Zero seeds from the clock
	MaxTurns  int          `yaml:"max_turns"`
	Games     int          `yaml:"games"`
	LogLevel  string       `yaml:"log_level"`
	Color     bool         `yaml:"color"`
	DeckFile  string       `yaml:"deck_file"`
	OutputDir string       `yaml:"output_dir"`
}

var DefaultConfig = Config{
	Search: SearchConfig{
		Iterations:  meta.ITERATIONS,
		MaxPlies:    meta.MAX_PLIES,
		Exploration: meta.EXPLORATION,
		Evaluation:  "material",
	},
	MaxTurns:  meta.MAX_TURNS,
	Games:     meta.NUM_GAMES,
	LogLevel:  "info",
	Color:     true,
	OutputDir: "results",
}

// InitConfig reads the config file from the XDG config directories, falling
// back to the defaults when there is none.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the config at path. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	config := DefaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	if config.DeckFile != "" && !filepath.IsAbs(config.DeckFile) {
		config.DeckFile = filepath.Join(filepath.Dir(path), config.DeckFile)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func (c *Config) Validate() error {
	switch {
	case c.Search.Iterations <= 0:
		return invalid("iterations must be positive, got %d", c.Search.Iterations)
	case c.Search.MaxPlies <= 0:
		return invalid("max_plies must be positive, got %d", c.Search.MaxPlies)
	case c.Search.Exploration < 0:
		return invalid("exploration must not be negative, got %v", c.Search.Exploration)
	case c.MaxTurns <= 0:
		return invalid("max_turns must be positive, got %d", c.MaxTurns)
	case c.Games <= 0:
		return invalid("games must be positive, got %d", c.Games)
	}
	if _, ok := evaluations[c.Search.Evaluation]; !ok {
		return invalid("unknown evaluation %q", c.Search.Evaluation)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level: %v", err)
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("cannot locate config file: %w", err)
	}
	return absPath, c.SaveTo(absPath)
}

func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0664); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Rand returns a source seeded from Seed, or from the clock when it is zero.
func (c *Config) Rand(now func() int64) *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(now())
	}
	return rand.New(rand.NewSource(seed))
}

// EvaluationFn returns the evaluator named by the search section.
func (c *Config) EvaluationFn() game.Evaluate {
	return evaluations[c.Search.Evaluation]
}

// SearchOptions configures a tree from the search section.
func (c *Config) SearchOptions() []searcher.Option {
	return []searcher.Option{
		searcher.WithIterations(c.Search.Iterations),
		searcher.WithMaxPlies(c.Search.MaxPlies),
		searcher.WithExploration(c.Search.Exploration),
		searcher.WithEvaluationFn(c.EvaluationFn()),
	}
}

// Deck loads DeckFile, or returns the standard deck when none is set.
func (c *Config) Deck() ([]game.Card, error) {
	if c.DeckFile == "" {
		return game.StandardDeck(), nil
	}
	return LoadDeck(c.DeckFile)
}
