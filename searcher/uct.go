package searcher

import (
	"math"

	"onitama/game"
)

func ucb1(avgValue float64, visits int, exploration float64, lnN float64) float64 {
	return avgValue + exploration*math.Sqrt(lnN/float64(visits))
}

// score rates a child for selection by a search conducted for side.
func (t *Tree) score(id nodeID, side game.Side) float64 {
	n := &t.nodes[id]
	// Prioritize unexplored nodes
	if n.visits == 0 {
		return math.Inf(1)
	}

	sign := -1.0
	if n.state.Active == side {
		sign = 1.0
	}
	lnN := math.Log(float64(t.nodes[n.parent].visits))
	return ucb1(sign*n.avgValue(), n.visits, t.exploration, lnN)
}

// pickChild returns the child with the highest score, the first one on ties.
func (t *Tree) pickChild(id nodeID, side game.Side) nodeID {
	children := t.nodes[id].children
	best := children[0]
	bestScore := math.Inf(-1)
	for _, child := range children {
		score := t.score(child, side)
		if score == math.Inf(1) {
			return child
		}
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// findLeaf descends from id by UCB1 until it reaches a node without children.
func (t *Tree) findLeaf(id nodeID, side game.Side) nodeID {
	for !t.nodes[id].isLeaf() {
		id = t.pickChild(id, side)
	}
	return id
}
