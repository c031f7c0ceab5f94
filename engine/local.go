package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoMove      = errors.New("no move submitted")
	ErrWrongSide   = errors.New("agent side mismatch")
)

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithObserver calls fn with the live game after every applied move.
func WithObserver(fn func(*game.GameState)) Option {
	return func(e *Local) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

// Local runs a game between two in-process agents.
type Local struct {
	State     *game.GameState
	deck      []game.Card
	rng       *rand.Rand
	agents    [2]Agent
	maxTurns  int
	observers []func(*game.GameState)
	pending   []game.Move
}

func NewLocal(deck []game.Card, rng *rand.Rand, red, blue Agent, options ...Option) *Local {
	e := &Local{
		deck:     deck,
		rng:      rng,
		agents:   [2]Agent{red, blue},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) submit(move game.Move) {
	e.pending = append(e.pending, move)
}

// Run deals a new game and plays it until a side wins or the turn limit is
// reached. Agent errors and illegal moves end the game early with an error.
func (e *Local) Run() (Result, error) {
	for side, agent := range e.agents {
		if agent.Side() != game.Side(side) {
			return Result{}, fmt.Errorf("cannot run game: %w: %s agent plays %s", ErrWrongSide, game.Side(side), agent.Side())
		}
	}

	gs, err := game.NewGame(e.deck, e.rng)
	if err != nil {
		return Result{}, err
	}
	e.State = gs
	e.pending = nil
	for _, fn := range e.observers {
		fn := fn
		gs.OnUpdate(func() { fn(gs) })
	}

	result := Result{Game: metrics.GameMetric{
		StartingSide: gs.Start,
		StartTime:    time.Now(),
	}}
	log.Info().Msgf("%s is starting with %s and %s against %s and %s, flex %s",
		gs.Start, gs.Hands[gs.Start][0], gs.Hands[gs.Start][1],
		gs.Hands[gs.Start.Opponent()][0], gs.Hands[gs.Start.Opponent()][1], gs.Flex)

	for _, agent := range e.agents {
		if err := agent.Initialize(gs, e.submit); err != nil {
			return e.finish(result), fmt.Errorf("cannot initialize %s agent: %w", agent.Side(), err)
		}
	}

	for !gs.Over() && result.Turns < e.maxTurns {
		side := gs.Active
		move, err := e.nextMove(side)
		if err != nil {
			return e.finish(result), err
		}

		shown := gs.AbsoluteMove(move)
		gs.ApplyMove(side, move, true)
		result.Turns++
		e.record(&result, side, move)
		log.Debug().Msgf("turn %d: %s played %s", result.Turns, side, shown)

		for _, agent := range e.agents {
			if err := agent.Observe(move); err != nil {
				return e.finish(result), fmt.Errorf("cannot pass move to %s agent: %w", agent.Side(), err)
			}
		}
	}

	if winner, ok := gs.Winner(); ok {
		log.Info().Msgf("%s wins after %d turns", winner, result.Turns)
	} else {
		log.Warn().Msgf("stopped after %d turns without a winner", result.Turns)
	}
	return e.finish(result), nil
}

func (e *Local) nextMove(side game.Side) (game.Move, error) {
	if len(e.pending) == 0 {
		if err := e.agents[side].TakeTurn(); err != nil {
			return game.Move{}, fmt.Errorf("cannot take turn for %s agent: %w", side, err)
		}
	}
	if len(e.pending) != 1 {
		return game.Move{}, fmt.Errorf("%w: %s agent submitted %d moves", ErrNoMove, side, len(e.pending))
	}

	move := e.pending[0]
	e.pending = e.pending[:0]
	if !slices.Contains(e.State.LegalMoves(side), move) {
		return game.Move{}, fmt.Errorf("%w: %s by %s", ErrIllegalMove, move, side)
	}
	return move, nil
}

func (e *Local) record(result *Result, side game.Side, move game.Move) {
	mm := metrics.MoveMetric{Step: result.Turns, Side: side, Move: move}
	if m, ok := e.agents[side].(Metered); ok {
		mm.SearchMetric = m.LastMetric()
	}
	result.Moves = append(result.Moves, mm)
}

func (e *Local) finish(result Result) Result {
	result.Status = e.State.Status
	result.Game.Status = e.State.Status
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = result.Turns
	return result
}
