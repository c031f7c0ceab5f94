package game

// Offset is a relative (Δx, Δy) displacement. Positive Y points toward the
// opponent's home row from the active side's point of view.
type Offset struct {
	X int
	Y int
}

// Card is read-only configuration shared by every copy of a game.
type Card struct {
	ID        int
	Name      string
	Moves     []Offset
	StartSide Side
}

func (c *Card) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// distinct drops cards whose ID was already seen, keeping the first occurrence.
func distinct(deck []Card) []Card {
	seen := make(map[int]bool, len(deck))
	cards := make([]Card, 0, len(deck))
	for _, card := range deck {
		if seen[card.ID] {
			continue
		}
		seen[card.ID] = true
		cards = append(cards, card)
	}
	return cards
}
