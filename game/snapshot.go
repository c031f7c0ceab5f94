package game

// InputSize is the length of Snapshot.Inputs.
const InputSize = Size*Size + DealSize

// Snapshot is a read-only record of a position from the point of view of
// Active, the side to move.
type Snapshot struct {
	Active Side
	Board  Board
	Mine   [HandSize]*Card
	Yours  [HandSize]*Card
	Flex   *Card
	deck   []Card
}

// Inputs flattens the snapshot for numeric evaluators: the 25 cells in [x][y]
// order, then the deck indices of the own pair, the opposing pair and the flex
// card. Cards missing from the deck are encoded as -1.
func (s Snapshot) Inputs() [InputSize]int {
	var r [InputSize]int
	i := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			r[i] = int(s.Board[x][y])
			i++
		}
	}
	for _, card := range []*Card{s.Mine[0], s.Mine[1], s.Yours[0], s.Yours[1], s.Flex} {
		r[i] = s.deckIndex(card)
		i++
	}
	return r
}

func (s Snapshot) deckIndex(card *Card) int {
	if card == nil {
		return -1
	}
	for i := range s.deck {
		if s.deck[i].ID == card.ID {
			return i
		}
	}
	return -1
}
