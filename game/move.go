package game

import "fmt"

type Cell struct {
	X int
	Y int
}

// PassCell marks both ends of a pass move.
var PassCell = Cell{X: -1, Y: -1}

func (c Cell) Add(o Offset) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Rotate returns the same square seen from the other side of the board.
func (c Cell) Rotate() Cell {
	return Cell{X: Size - 1 - c.X, Y: Size - 1 - c.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move plays Card and relocates the piece on From to To. Cells are relative to
// the side that plays the move.
type Move struct {
	Card *Card
	From Cell
	To   Cell
}

func NewPass(card *Card) Move {
	return Move{Card: card, From: PassCell, To: PassCell}
}

func (m Move) IsPass() bool {
	return m.From == PassCell && m.To == PassCell
}

func (m Move) String() string {
	if m.IsPass() {
		return fmt.Sprintf("%s: pass", m.Card)
	}
	return fmt.Sprintf("%s: %s->%s", m.Card, m.From, m.To)
}
