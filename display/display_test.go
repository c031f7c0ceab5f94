package display

import (
	"bytes"
	"fmt"
	"testing"

	"onitama/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, seed uint64) *game.GameState {
	t.Helper()
	gs, err := game.NewGame(game.StandardDeck(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return gs
}

func TestRender(t *testing.T) {
	t.Run("drawing the starting position", func(t *testing.T) {
		gs := newTestGame(t, 1)
		r := New(&bytes.Buffer{}, WithProfile(termenv.Ascii))

		want := fmt.Sprintf("blue: %s %s\n", gs.Hands[game.Blue][0], gs.Hands[game.Blue][1]) +
			"4 b b B b b\n" +
			"3 . . . . .\n" +
			"2 . . . . .\n" +
			"1 . . . . .\n" +
			"0 r r R r r\n" +
			"  0 1 2 3 4\n" +
			fmt.Sprintf("red: %s %s\n", gs.Hands[game.Red][0], gs.Hands[game.Red][1]) +
			fmt.Sprintf("flex: %s\n", gs.Flex) +
			fmt.Sprintf("%s to move\n", gs.Active)

		require.Equal(t, want, r.Render(gs))
	})

	t.Run("keeping red at the bottom after a blue move", func(t *testing.T) {
		gs := newTestGame(t, 1)
		if gs.Active == game.Red {
			gs.SwitchPlayer()
		}
		blue := gs.LegalMoves(game.Blue)[0]
		gs.ApplyMove(game.Blue, blue, true)

		out := New(&bytes.Buffer{}, WithProfile(termenv.Ascii)).Render(gs)

		require.Contains(t, out, "0 r r R r r", "Red home row should stay at the bottom")
	})

	t.Run("announcing the winner", func(t *testing.T) {
		gs := newTestGame(t, 2)
		gs.Status = game.BlueWins

		out := New(&bytes.Buffer{}, WithProfile(termenv.Ascii)).Render(gs)

		require.Contains(t, out, "blue wins\n")
	})
}

func TestObserve(t *testing.T) {
	t.Run("drawing an applied move", func(t *testing.T) {
		gs := newTestGame(t, 3)
		var buf bytes.Buffer
		r := New(&buf, WithProfile(termenv.Ascii))
		gs.OnUpdate(func() { r.Observe(gs) })

		gs.ApplyMove(gs.Active, gs.LegalMoves(gs.Active)[0], true)

		require.Contains(t, buf.String(), "flex: ", "Applied move should be drawn")
	})

	t.Run("naming the side to move next", func(t *testing.T) {
		for _, seed := range []uint64{1, 2, 3, 4} {
			gs := newTestGame(t, seed)
			mover := gs.Active
			var buf bytes.Buffer
			r := New(&buf, WithProfile(termenv.Ascii))
			gs.OnUpdate(func() { r.Observe(gs) })

			gs.ApplyMove(mover, gs.LegalMoves(mover)[0], true)

			require.Contains(t, buf.String(), mover.Opponent().String()+" to move\n", "Frame should name the opponent of the mover")
			require.NotContains(t, buf.String(), mover.String()+" to move", "Frame should not name the mover")
			require.Equal(t, buf.String(), r.Render(gs)+"\n", "Frame should match a render after the turn passed")
		}
	})
}
