package searcher

import "onitama/meta"

// Hyperparameters for MCTS

const DefaultExploration = meta.EXPLORATION // Exploration constant C in UCB1
const DefaultMaxPlies = meta.MAX_PLIES      // Random moves per playout before evaluating
const DefaultIterations = meta.ITERATIONS   // Playouts per decision

// Value of a playout that ends the game, from the winner's point of view.
// Heuristic evaluations stay well below it.
const TerminalValue = 10.0
