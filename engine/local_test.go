package engine

import (
	"bytes"
	"fmt"
	"testing"

	"onitama/game"
	"onitama/player"
	"onitama/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// scripted submits fixed moves regardless of the position.
type scripted struct {
	side   game.Side
	moves  []game.Move
	submit func(game.Move)
	seen   []game.Move
}

func (s *scripted) Side() game.Side { return s.side }

func (s *scripted) Initialize(gs *game.GameState, submit func(game.Move)) error {
	s.submit = submit
	if gs.Active == s.side {
		return s.TakeTurn()
	}
	return nil
}

func (s *scripted) TakeTurn() error {
	s.submit(s.moves[0])
	s.moves = s.moves[1:]
	return nil
}

func (s *scripted) Observe(move game.Move) error {
	s.seen = append(s.seen, move)
	return nil
}

func randomAgents(seed uint64) (Agent, Agent) {
	return player.NewRandom(game.Red, rand.New(rand.NewSource(seed))),
		player.NewRandom(game.Blue, rand.New(rand.NewSource(seed+1)))
}

func TestLocalRun(t *testing.T) {
	t.Run("playing random agents to the end", func(t *testing.T) {
		red, blue := randomAgents(1)
		e := NewLocal(game.StandardDeck(), rand.New(rand.NewSource(1)), red, blue, WithMaxTurns(1000))

		result, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.Over(), "Random game should finish within the turn limit")
		require.Equal(t, e.State.Status, result.Status)
		require.Equal(t, result.Turns, len(e.State.History), "Every turn should be recorded")
		require.Len(t, result.Moves, result.Turns, "Every turn should have a move metric")
		require.Equal(t, result.Turns, result.Game.TotalMoves)
		require.Equal(t, e.State.Start, result.Game.StartingSide)

		_, ok := result.Winner()
		require.True(t, ok, "Finished game should have a winner")
	})

	t.Run("stopping at the turn limit", func(t *testing.T) {
		red, blue := randomAgents(2)
		e := NewLocal(game.StandardDeck(), rand.New(rand.NewSource(2)), red, blue, WithMaxTurns(1))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 1, result.Turns, "Game should stop after one turn")
		require.Equal(t, game.Playing, result.Status, "Single move cannot end the game")
	})

	t.Run("notifying observers", func(t *testing.T) {
		red, blue := randomAgents(3)
		calls := 0
		e := NewLocal(game.StandardDeck(), rand.New(rand.NewSource(3)), red, blue,
			WithMaxTurns(4),
			WithObserver(func(gs *game.GameState) { calls++ }),
		)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, result.Turns, calls, "Observer should run once per applied move")
	})

	t.Run("rejecting an illegal move", func(t *testing.T) {
		bogus := game.Move{Card: &game.Card{Name: "Bogus"}, From: game.Cell{X: 0, Y: 0}, To: game.Cell{X: 0, Y: 1}}
		red := &scripted{side: game.Red, moves: []game.Move{bogus, bogus}}
		blue := &scripted{side: game.Blue, moves: []game.Move{bogus, bogus}}
		e := NewLocal(game.StandardDeck(), rand.New(rand.NewSource(4)), red, blue)

		result, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Zero(t, result.Turns, "Illegal move should not be applied")
		require.Empty(t, red.seen, "Agents should not observe a rejected move")
	})

	t.Run("rejecting swapped agents", func(t *testing.T) {
		red, blue := randomAgents(5)
		e := NewLocal(game.StandardDeck(), rand.New(rand.NewSource(5)), blue, red)

		_, err := e.Run()

		require.ErrorIs(t, err, ErrWrongSide)
	})

	t.Run("rejecting a deck that is too small", func(t *testing.T) {
		red, blue := randomAgents(6)
		e := NewLocal(game.StandardDeck()[:3], rand.New(rand.NewSource(6)), red, blue)

		_, err := e.Run()

		require.ErrorIs(t, err, game.ErrDeckTooSmall)
	})

	t.Run("recording bot metrics", func(t *testing.T) {
		options := func(seed uint64) []searcher.Option {
			return []searcher.Option{
				searcher.WithIterations(20),
				searcher.WithMaxPlies(10),
				searcher.WithRand(rand.New(rand.NewSource(seed))),
				searcher.WithMetrics(),
			}
		}
		red := player.NewBot(game.Red, options(7)...)
		blue := player.NewBot(game.Blue, options(8)...)
		e := NewLocal(game.StandardDeck(), rand.New(rand.NewSource(7)), red, blue, WithMaxTurns(6))

		result, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, result.Moves)
		for i, mm := range result.Moves {
			require.Equal(t, i+1, mm.Step)
			require.Equal(t, 20, mm.Episodes, "Bot moves should carry their search metric")
		}
	})
	t.Run("logging moves in display orientation", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.Logger
		log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
		t.Cleanup(func() { log.Logger = logger })

		red, blue := randomAgents(9)
		e := NewLocal(game.StandardDeck(), rand.New(rand.NewSource(9)), red, blue, WithMaxTurns(2))

		result, err := e.Run()
		require.NoError(t, err)
		require.Len(t, result.Moves, 2)

		for _, mm := range result.Moves {
			shown := mm.Move
			if mm.Side == e.State.TopOfBoard && !mm.Move.IsPass() {
				shown.From, shown.To = shown.From.Rotate(), shown.To.Rotate()
			}
			want := fmt.Sprintf("turn %d: %s played %s", mm.Step, mm.Side, shown)
			require.Contains(t, buf.String(), want, "Top side moves should be logged as drawn")
		}
	})
}
