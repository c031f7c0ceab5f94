package searcher

import (
	"testing"

	"onitama/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestState(t *testing.T, seed uint64) *game.GameState {
	t.Helper()
	gs, err := game.NewGame(game.StandardDeck(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return gs
}

// winInOne has Red to move with its master one step below the temple. The
// winning move is generated first.
func winInOne() *game.GameState {
	var board game.Board
	board[2][3] = game.Master
	board[0][4] = -game.Master
	board[4][4] = -game.Pawn

	forward := &game.Card{ID: 0, Name: "Forward", Moves: []game.Offset{{X: 0, Y: 1}}}
	right := &game.Card{ID: 1, Name: "Right", Moves: []game.Offset{{X: 1, Y: 0}}}
	left := &game.Card{ID: 2, Name: "Left", Moves: []game.Offset{{X: -1, Y: 0}}}
	back := &game.Card{ID: 3, Name: "Back", Moves: []game.Offset{{X: 0, Y: -1}}}
	flex := &game.Card{ID: 4, Name: "Diagonal", Moves: []game.Offset{{X: 1, Y: 1}}}

	return &game.GameState{
		Board:      board,
		Hands:      [2][game.HandSize]*game.Card{{forward, right}, {left, back}},
		Flex:       flex,
		Active:     game.Red,
		Start:      game.Red,
		TopOfBoard: game.Blue,
		Status:     game.Playing,
	}
}

func TestExpand(t *testing.T) {
	t.Run("adding one child per legal move", func(t *testing.T) {
		gs := newTestState(t, 1)
		tree := NewTree(gs, WithRand(rand.New(rand.NewSource(1))))

		moves := gs.LegalMoves(gs.Active)
		children := tree.Children()
		require.Len(t, children, len(moves), "Root should hold one child per legal move")
		for i, child := range children {
			require.Equal(t, moves[i], child.Move, "Children should follow move generation order")
			require.Zero(t, child.Visits, "New children should be unvisited")
		}
		for _, id := range tree.nodes[tree.root].children {
			require.Equal(t, gs.Active.Opponent(), tree.nodes[id].state.Active, "Child should have the turn passed")
			require.Equal(t, tree.root, tree.nodes[id].parent, "Child should link to the root")
		}
	})

	t.Run("leaving the source state untouched", func(t *testing.T) {
		gs := newTestState(t, 2)
		before := gs.Clone()

		NewTree(gs)

		require.Equal(t, before, gs, "Search should not mutate the live game")
	})

	t.Run("panicking on an expanded node", func(t *testing.T) {
		tree := NewTree(newTestState(t, 3))

		require.Panics(t, func() { tree.expand(tree.root) }, "Expanding twice should panic")
	})

	t.Run("ignoring a terminal node", func(t *testing.T) {
		gs := winInOne()
		gs.Status = game.RedWins

		tree := NewTree(gs)

		require.Equal(t, 1, tree.Size(), "Terminal root should stay a leaf")
		require.True(t, tree.Root().Terminal, "Root should be recognized as terminal")
	})
}

func TestSimulate(t *testing.T) {
	t.Run("scoring a terminal node", func(t *testing.T) {
		tree := NewTree(winInOne(), WithRand(rand.New(rand.NewSource(1))))
		win := tree.nodes[tree.root].children[0]
		require.True(t, tree.nodes[win].state.Over(), "First child should end the game")

		require.Equal(t, TerminalValue, tree.simulate(win), "Terminal node should score the terminal value")
	})

	t.Run("evaluating at the ply cap", func(t *testing.T) {
		evaluate := func(*game.GameState) float64 { return 0.25 }
		tree := NewTree(newTestState(t, 4),
			WithMaxPlies(1),
			WithEvaluationFn(evaluate),
			WithRand(rand.New(rand.NewSource(1))),
		)

		// No single move from the opening ends the game
		require.Equal(t, 0.25, tree.simulate(tree.root), "Capped playout should use the evaluation")
	})

	t.Run("bounding every playout value", func(t *testing.T) {
		tree := NewTree(newTestState(t, 5), WithRand(rand.New(rand.NewSource(5))))

		for i := 0; i < 50; i++ {
			v := tree.simulate(tree.root)
			require.LessOrEqual(t, v, TerminalValue)
			require.GreaterOrEqual(t, v, -TerminalValue)
		}
	})
}

func TestBackPropagate(t *testing.T) {
	tree := NewTree(newTestState(t, 6))
	child := tree.nodes[tree.root].children[0]
	tree.expand(child)
	grandchild := tree.nodes[child].children[0]

	tree.backPropagate(grandchild, 3)

	require.Equal(t, 3.0, tree.nodes[grandchild].value, "Leaf should record the value")
	require.Equal(t, -3.0, tree.nodes[child].value, "Parent should record the negated value")
	require.Equal(t, 3.0, tree.nodes[tree.root].value, "Sign should flip again at the root")
	for _, id := range []nodeID{grandchild, child, tree.root} {
		require.Equal(t, 1, tree.nodes[id].visits, "Every node on the path should be visited once")
	}
}
