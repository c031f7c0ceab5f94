package game

// StandardDeck returns the sixteen cards of the base game. Every call returns
// a fresh slice.
func StandardDeck() []Card {
	return []Card{
		{ID: 0, Name: "Tiger", StartSide: Blue, Moves: []Offset{{0, 2}, {0, -1}}},
		{ID: 1, Name: "Dragon", StartSide: Red, Moves: []Offset{{-2, 1}, {2, 1}, {-1, -1}, {1, -1}}},
		{ID: 2, Name: "Frog", StartSide: Red, Moves: []Offset{{-2, 0}, {-1, 1}, {1, -1}}},
		{ID: 3, Name: "Rabbit", StartSide: Blue, Moves: []Offset{{2, 0}, {1, 1}, {-1, -1}}},
		{ID: 4, Name: "Crab", StartSide: Blue, Moves: []Offset{{0, 1}, {-2, 0}, {2, 0}}},
		{ID: 5, Name: "Elephant", StartSide: Red, Moves: []Offset{{-1, 1}, {1, 1}, {-1, 0}, {1, 0}}},
		{ID: 6, Name: "Goose", StartSide: Blue, Moves: []Offset{{-1, 1}, {-1, 0}, {1, 0}, {1, -1}}},
		{ID: 7, Name: "Rooster", StartSide: Red, Moves: []Offset{{1, 1}, {-1, 0}, {1, 0}, {-1, -1}}},
		{ID: 8, Name: "Monkey", StartSide: Blue, Moves: []Offset{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}},
		{ID: 9, Name: "Mantis", StartSide: Red, Moves: []Offset{{-1, 1}, {1, 1}, {0, -1}}},
		{ID: 10, Name: "Horse", StartSide: Red, Moves: []Offset{{0, 1}, {-1, 0}, {0, -1}}},
		{ID: 11, Name: "Ox", StartSide: Blue, Moves: []Offset{{0, 1}, {1, 0}, {0, -1}}},
		{ID: 12, Name: "Crane", StartSide: Blue, Moves: []Offset{{0, 1}, {-1, -1}, {1, -1}}},
		{ID: 13, Name: "Boar", StartSide: Red, Moves: []Offset{{0, 1}, {-1, 0}, {1, 0}}},
		{ID: 14, Name: "Eel", StartSide: Blue, Moves: []Offset{{-1, 1}, {-1, -1}, {1, 0}}},
		{ID: 15, Name: "Cobra", StartSide: Red, Moves: []Offset{{1, 1}, {1, -1}, {-1, 0}}},
	}
}
