package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

const HandSize = 2

// DealSize is the number of cards in play: two per side plus the flex card.
const DealSize = 2*HandSize + 1

var ErrDeckTooSmall = errors.New("deck has fewer than 5 distinct cards")

// GameState is the live rules engine of one game. It is not safe for
// concurrent use.
type GameState struct {
	Board      Board              // Active-relative board
	Display    Board              // Board as drawn, with TopOfBoard at the top
	Hands      [2][HandSize]*Card // Cards held, indexed by Side
	Flex       *Card              // Card held by neither side
	Active     Side               // Side to move
	Start      Side               // Side that moved first
	TopOfBoard Side               // Side drawn at the top of Display
	Status     Status             // Playing until one side wins
	History    []Snapshot         // Snapshots of visually applied moves
	Deck       []Card             // Distinct cards the game was dealt from
	observers  []func()
}

// NewGame creates a game and deals it from deck.
func NewGame(deck []Card, rng *rand.Rand) (*GameState, error) {
	gs := &GameState{TopOfBoard: Blue}
	if err := gs.StartGame(deck, rng); err != nil {
		return nil, err
	}
	return gs, nil
}

// StartGame resets the board and deals five distinct cards from deck.
// Observers stay registered.
func (gs *GameState) StartGame(deck []Card, rng *rand.Rand) error {
	cards := distinct(deck)
	if len(cards) < DealSize {
		return fmt.Errorf("cannot start game: %w (got %d)", ErrDeckTooSmall, len(cards))
	}

	gs.Deck = cards
	gs.Board = StartingBoard()
	gs.Display = StartingBoard()
	gs.History = nil
	gs.deal(rng)
	gs.Status = Playing
	return nil
}

func (gs *GameState) deal(rng *rand.Rand) {
	picks := rng.Perm(len(gs.Deck))[:DealSize]

	gs.Hands[Red] = [HandSize]*Card{&gs.Deck[picks[0]], &gs.Deck[picks[2]]}
	gs.Hands[Blue] = [HandSize]*Card{&gs.Deck[picks[1]], &gs.Deck[picks[3]]}
	gs.Flex = &gs.Deck[picks[4]]

	gs.Start = gs.Flex.StartSide
	gs.Active = gs.Start
}

// Clone copies everything but the history and the observers. The deck and the
// cards it holds are shared.
func (gs *GameState) Clone() *GameState {
	return &GameState{
		Board:      gs.Board,
		Display:    gs.Display,
		Hands:      gs.Hands,
		Flex:       gs.Flex,
		Active:     gs.Active,
		Start:      gs.Start,
		TopOfBoard: gs.TopOfBoard,
		Status:     gs.Status,
		Deck:       gs.Deck,
	}
}

// OnUpdate registers fn to be called after every visually applied move.
func (gs *GameState) OnUpdate(fn func()) {
	if fn != nil {
		gs.observers = append(gs.observers, fn)
	}
}

func (gs *GameState) notify() {
	for _, fn := range gs.observers {
		fn()
	}
}

func (gs *GameState) Over() bool {
	return gs.Status != Playing
}

func (gs *GameState) Winner() (Side, bool) {
	switch gs.Status {
	case RedWins:
		return Red, true
	case BlueWins:
		return Blue, true
	}
	return Red, false
}

// Absolute maps an active-relative cell to its position on Display.
func (gs *GameState) Absolute(c Cell) Cell {
	if c == PassCell || gs.Active != gs.TopOfBoard {
		return c
	}
	return c.Rotate()
}

// AbsoluteMove maps both cells of a move about to be played to Display.
func (gs *GameState) AbsoluteMove(m Move) Move {
	return Move{Card: m.Card, From: gs.Absolute(m.From), To: gs.Absolute(m.To)}
}

// Snapshot returns the position as seen by the side to move.
func (gs *GameState) Snapshot() Snapshot {
	return gs.snapshotFor(gs.Active)
}

func (gs *GameState) snapshotFor(side Side) Snapshot {
	board := gs.Board
	if side != gs.Active {
		board = board.Invert()
	}
	return Snapshot{
		Active: side,
		Board:  board,
		Mine:   gs.Hands[side],
		Yours:  gs.Hands[side.Opponent()],
		Flex:   gs.Flex,
		deck:   gs.Deck,
	}
}
