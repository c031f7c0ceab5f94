package searcher

import (
	"onitama/game"
)

// nodeID addresses a node in the tree's arena.
type nodeID int

const noParent nodeID = -1

// node owns its own copy of the game. The parent link is only followed upward
// during backpropagation.
type node struct {
	state    *game.GameState
	move     game.Move // Move that led here, zero at the original root
	parent   nodeID
	children []nodeID
	visits   int
	value    float64
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node) avgValue() float64 {
	return n.value / float64(n.visits)
}

// expand adds one child per legal move. Terminal nodes stay leaves.
func (t *Tree) expand(id nodeID) {
	n := &t.nodes[id]
	if !n.isLeaf() {
		panic("cannot expand node: it is already expanded")
	}
	if n.state.Over() {
		return
	}

	state := n.state
	for _, move := range state.LegalMoves(state.Active) {
		t.addChild(id, state, move)
	}
}

func (t *Tree) addChild(parent nodeID, state *game.GameState, move game.Move) {
	next := state.Clone()
	next.ApplyMove(next.Active, move, false)

	t.nodes = append(t.nodes, node{
		state:  next,
		move:   move,
		parent: parent,
	})
	child := nodeID(len(t.nodes) - 1)
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

// simulate estimates the node with a random playout of at most maxPlies moves.
func (t *Tree) simulate(id nodeID) float64 {
	state := t.nodes[id].state
	if state.Over() {
		t.metrics.AddFullPlayout()
		return TerminalValue
	}

	playout := state.Clone()
	for i := 0; i < t.maxPlies; i++ {
		moves := playout.LegalMoves(playout.Active)
		move := moves[t.rng.Intn(len(moves))] // Random rollout policy
		playout.ApplyMove(playout.Active, move, false)

		if playout.Over() {
			t.metrics.AddFullPlayout()
			if playout.Active == state.Active {
				return TerminalValue
			}
			return -TerminalValue
		}
	}

	// Cutoff reached, score the position instead
	return t.evaluate(playout)
}

// backPropagate records value on id and the negated value on each ancestor in
// turn, since the acting side alternates every ply.
func (t *Tree) backPropagate(id nodeID, value float64) {
	for id != noParent {
		n := &t.nodes[id]
		n.value += value
		n.visits++
		value = -value
		id = n.parent
	}
}
