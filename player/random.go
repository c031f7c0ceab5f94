package player

import (
	"fmt"

	"onitama/experiments/metrics"
	"onitama/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It serves as a baseline opponent.
type Random struct {
	side   game.Side
	rng    *rand.Rand
	state  *game.GameState
	submit func(game.Move)
}

func NewRandom(side game.Side, rng *rand.Rand) *Random {
	return &Random{side: side, rng: rng}
}

func (r *Random) Side() game.Side {
	return r.side
}

func (r *Random) Initialize(gs *game.GameState, submit func(game.Move)) error {
	r.state = gs
	r.submit = submit
	if gs.Active == r.side && !gs.Over() {
		return r.TakeTurn()
	}
	return nil
}

func (r *Random) TakeTurn() error {
	if r.state == nil {
		return fmt.Errorf("cannot take turn for %s: %w", r.side, ErrNotInitialized)
	}
	if r.state.Over() {
		return fmt.Errorf("cannot take turn for %s: %w", r.side, ErrGameOver)
	}
	if r.state.Active != r.side {
		return fmt.Errorf("cannot take turn for %s: %w", r.side, ErrNotActive)
	}

	moves := r.state.LegalMoves(r.side)
	r.submit(moves[r.rng.Intn(len(moves))])
	return nil
}

func (r *Random) Observe(game.Move) error {
	return nil
}

func (r *Random) LastMetric() metrics.SearchMetric {
	return metrics.SearchMetric{}
}
