package engine

import (
	"onitama/experiments/metrics"
	"onitama/game"
)

// Agent is one side's decision maker. The engine hands it the live game with
// Initialize and expects exactly one submitted move per turn of its side,
// either from Initialize or from TakeTurn. Observe is called with every move
// applied to the live game, in order.
type Agent interface {
	Side() game.Side
	Initialize(gs *game.GameState, submit func(game.Move)) error
	TakeTurn() error
	Observe(move game.Move) error
}

// Metered agents report the search behind their last decision.
type Metered interface {
	LastMetric() metrics.SearchMetric
}

type Result struct {
	Status game.Status
	Turns  int
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

func (r Result) Winner() (game.Side, bool) {
	switch r.Status {
	case game.RedWins:
		return game.Red, true
	case game.BlueWins:
		return game.Blue, true
	}
	return game.Red, false
}
