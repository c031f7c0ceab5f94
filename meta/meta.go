// meta/meta.go
package meta

// ITERATIONS defines the number of playouts per MCTS decision.
const ITERATIONS = 50

// MAX_PLIES defines the random moves per playout before evaluating.
const MAX_PLIES = 30

// EXPLORATION defines the UCB1 exploration constant.
const EXPLORATION = 0.6

// MAX_TURNS defines the number of turns after which a game is abandoned.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10
