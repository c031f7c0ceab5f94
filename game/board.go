package game

import "strings"

const Size = 5

// Cell values, always relative to the active side. Opposing pieces are negated.
const (
	Empty  int8 = 0
	Pawn   int8 = 1
	Master int8 = 2
)

// StartingMaterial is the summed piece value of one side at game start.
const StartingMaterial = 4*Pawn + Master

// Temple is the opposing master's starting square. Reaching it wins the game.
var Temple = Cell{X: 2, Y: 4}

// Board is indexed [x][y] from the active side's perspective.
type Board [Size][Size]int8

var startingBoard = Board{
	{Pawn, Empty, Empty, Empty, -Pawn},
	{Pawn, Empty, Empty, Empty, -Pawn},
	{Master, Empty, Empty, Empty, -Master},
	{Pawn, Empty, Empty, Empty, -Pawn},
	{Pawn, Empty, Empty, Empty, -Pawn},
}

func StartingBoard() Board {
	return startingBoard
}

func (b *Board) At(c Cell) int8 {
	return b[c.X][c.Y]
}

func (b *Board) Set(c Cell, value int8) {
	b[c.X][c.Y] = value
}

// Invert swaps the owner of every piece and rotates the board 180 degrees so
// that the board reads the same way for the other side.
func (b Board) Invert() Board {
	var r Board
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			r[i][j] = -b[Size-1-i][Size-1-j]
		}
	}
	return r
}

// Sum is the material balance in favor of the active side.
func (b *Board) Sum() int {
	sum := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			sum += int(b[i][j])
		}
	}
	return sum
}

// Count returns how many cells hold exactly value.
func (b *Board) Count(value int8) int {
	n := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == value {
				n++
			}
		}
	}
	return n
}

func (b *Board) Contains(value int8) bool {
	return b.Count(value) > 0
}

func (b Board) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			sb.WriteByte(pieceSymbol(b[x][y]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pieceSymbol(v int8) byte {
	switch v {
	case Pawn:
		return 'p'
	case Master:
		return 'm'
	case -Pawn:
		return 'P'
	case -Master:
		return 'M'
	default:
		return '.'
	}
}
