package player

import (
	"errors"
	"fmt"

	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/searcher"
)

var (
	ErrNotActive      = errors.New("side is not active")
	ErrGameOver       = errors.New("game is over")
	ErrNotInitialized = errors.New("agent is not initialized")
)

// Bot plays one side of a game with MCTS. It keeps its search tree in step
// with the live game, so every move made by either side has to be passed to it
// in game order.
type Bot struct {
	side    game.Side
	options []searcher.Option
	state   *game.GameState // Live game, read only
	submit  func(game.Move)
	tree    *searcher.Tree
	last    metrics.SearchMetric
}

func NewBot(side game.Side, options ...searcher.Option) *Bot {
	return &Bot{side: side, options: options}
}

func (b *Bot) Side() game.Side {
	return b.side
}

// Initialize seeds a fresh tree from gs and moves right away if the bot's side
// is the one to act.
func (b *Bot) Initialize(gs *game.GameState, submit func(game.Move)) error {
	b.state = gs
	b.submit = submit
	b.tree = searcher.NewTree(gs, b.options...)
	b.last = metrics.SearchMetric{}

	if gs.Active == b.side && !gs.Over() {
		return b.TakeTurn()
	}
	return nil
}

// TakeTurn searches from the current position and submits the chosen move.
func (b *Bot) TakeTurn() error {
	if b.tree == nil {
		return fmt.Errorf("cannot take turn for %s: %w", b.side, ErrNotInitialized)
	}
	if b.state.Over() {
		return fmt.Errorf("cannot take turn for %s: %w", b.side, ErrGameOver)
	}
	if b.state.Active != b.side {
		return fmt.Errorf("cannot take turn for %s: %w", b.side, ErrNotActive)
	}

	move := b.tree.SelectBestMove()
	b.last = b.tree.Metrics()
	b.submit(move)
	return nil
}

// PassMoveToTree advances the tree past a move that was applied to the live
// game.
func (b *Bot) PassMoveToTree(move game.Move) error {
	if b.tree == nil {
		return fmt.Errorf("cannot pass move %s to %s: %w", move, b.side, ErrNotInitialized)
	}
	b.tree.SwitchToNode(move)
	return nil
}

func (b *Bot) Observe(move game.Move) error {
	return b.PassMoveToTree(move)
}

// LastMetric returns the search metric of the last decision.
func (b *Bot) LastMetric() metrics.SearchMetric {
	return b.last
}

// Tree exposes the current search tree, nil before Initialize.
func (b *Bot) Tree() *searcher.Tree {
	return b.tree
}
