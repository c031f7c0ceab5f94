package searcher

import (
	"fmt"
	"math"
	"time"

	"onitama/experiments/metrics"
	"onitama/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(t *Tree)

func WithExploration(c float64) Option {
	return func(t *Tree) {
		if c >= 0 {
			t.exploration = c
		}
	}
}

func WithMaxPlies(plies int) Option {
	return func(t *Tree) {
		if plies > 0 {
			t.maxPlies = plies
		}
	}
}

func WithIterations(iterations int) Option {
	return func(t *Tree) {
		if iterations > 0 {
			t.iterations = iterations
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) {
		if rng != nil {
			t.rng = rng
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(t *Tree) {
		if evaluate != nil {
			t.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(t *Tree) {
		t.metrics = metrics.NewCollector()
	}
}

// Tree is a single-threaded MCTS over positions of one game. Nodes live in an
// arena and refer to each other by index.
type Tree struct {
	nodes       []node
	root        nodeID
	reused      bool
	exploration float64
	maxPlies    int
	iterations  int
	rng         *rand.Rand
	evaluate    game.Evaluate
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

// NewTree roots a tree at a private copy of state and expands the root.
func NewTree(state *game.GameState, options ...Option) *Tree {
	t := &Tree{ // Default values
		root:        0,
		exploration: DefaultExploration,
		maxPlies:    DefaultMaxPlies,
		iterations:  DefaultIterations,
		evaluate:    game.EvaluateMaterial,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	t.nodes = []node{{state: state.Clone(), parent: noParent}}
	t.expand(t.root)
	return t
}

// SelectBestMove runs the iteration budget from the current root and returns
// the move of the root child with the best average value.
func (t *Tree) SelectBestMove() game.Move {
	if t.nodes[t.root].isLeaf() {
		panic("cannot select best move: root has no children")
	}

	t.metrics.Start(t.iterations, t.maxPlies, t.exploration)
	t.metrics.SetTreeReused(t.reused)
	t.process(t.iterations)
	t.last = t.metrics.Complete(len(t.nodes))

	root := &t.nodes[t.root]
	best := root.children[0]
	bestValue := math.Inf(-1)
	for _, child := range root.children {
		c := &t.nodes[child]
		if c.visits == 0 {
			continue
		}
		if v := c.avgValue(); v > bestValue {
			bestValue = v
			best = child
		}
	}

	move := t.nodes[best].move
	log.Debug().
		Str("side", root.state.Active.String()).
		Str("move", move.String()).
		Float64("value", bestValue).
		Int("visits", root.visits).
		Int("tree_size", len(t.nodes)).
		Msg("selected move")
	return move
}

func (t *Tree) process(iterations int) {
	side := t.nodes[t.root].state.Active
	for i := 0; i < iterations; i++ {
		id := t.findLeaf(t.root, side)

		// A sampled leaf is expanded and searched one level deeper
		if t.nodes[id].visits > 0 {
			t.expand(id)
			if !t.nodes[id].isLeaf() {
				id = t.findLeaf(id, side)
			}
		}

		value := t.simulate(id)
		t.backPropagate(id, value)
		t.metrics.AddEpisode()
	}
}

// SwitchToNode advances the root to the child reached by move, keeping the
// statistics of its subtree and discarding the rest. A move that matches no
// child means the tree and the game disagree, which is unrecoverable.
func (t *Tree) SwitchToNode(move game.Move) {
	for _, child := range t.nodes[t.root].children {
		if t.nodes[child].move == move {
			t.reroot(child)
			t.reused = t.nodes[t.root].visits > 0
			if t.nodes[t.root].isLeaf() {
				t.expand(t.root)
			}
			return
		}
	}

	panic(fmt.Sprintf("no matching legal move found for %s", move))
}

// reroot compacts the arena to the subtree under id, which becomes node 0.
func (t *Tree) reroot(id nodeID) {
	nodes := make([]node, 0, t.subtreeSize(id))
	root := t.nodes[id]
	root.parent = noParent
	nodes = append(nodes, root)

	for i := 0; i < len(nodes); i++ {
		old := nodes[i].children
		children := make([]nodeID, len(old))
		for k, oldChild := range old {
			child := t.nodes[oldChild]
			child.parent = nodeID(i)
			nodes = append(nodes, child)
			children[k] = nodeID(len(nodes) - 1)
		}
		nodes[i].children = children
	}

	t.nodes = nodes
	t.root = 0
}

func (t *Tree) subtreeSize(id nodeID) int {
	size := 1
	for _, child := range t.nodes[id].children {
		size += t.subtreeSize(child)
	}
	return size
}

// NodeStat is a read-only view of a node's statistics.
type NodeStat struct {
	Move     game.Move
	Visits   int
	Value    float64
	Terminal bool
}

// AvgValue is Value/Visits, or NaN before the first visit.
func (s NodeStat) AvgValue() float64 {
	if s.Visits == 0 {
		return math.NaN()
	}
	return s.Value / float64(s.Visits)
}

func (t *Tree) stat(id nodeID) NodeStat {
	n := &t.nodes[id]
	return NodeStat{
		Move:     n.move,
		Visits:   n.visits,
		Value:    n.value,
		Terminal: n.state.Over(),
	}
}

func (t *Tree) Root() NodeStat {
	return t.stat(t.root)
}

// Children lists the root's children in move generation order.
func (t *Tree) Children() []NodeStat {
	children := t.nodes[t.root].children
	stats := make([]NodeStat, len(children))
	for i, child := range children {
		stats[i] = t.stat(child)
	}
	return stats
}

// RootState returns a copy of the position at the root.
func (t *Tree) RootState() *game.GameState {
	return t.nodes[t.root].state.Clone()
}

// Size is the number of nodes currently held.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// Metrics returns the metric of the last SelectBestMove. It is empty unless
// the tree was built WithMetrics.
func (t *Tree) Metrics() metrics.SearchMetric {
	return t.last
}
