package game

// EvaluateMaterial scores the material balance from the active side's
// perspective, scaled so that one side's full starting material equals 1.
func EvaluateMaterial(gs *GameState) float64 {
	return float64(gs.Board.Sum()) / float64(StartingMaterial)
}

// EvaluateMasterSafety weighs material together with how far each master has
// advanced toward the temple it attacks, in the same scale as EvaluateMaterial.
func EvaluateMasterSafety(gs *GameState) float64 {
	var own, opposing int
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			switch gs.Board[x][y] {
			case Master:
				own = distance(Cell{X: x, Y: y}, Temple)
			case -Master:
				opposing = distance(Cell{X: x, Y: y}, Temple.Rotate())
			}
		}
	}
	advance := float64(opposing-own) / float64(2*(Size-1))
	return (EvaluateMaterial(gs) + advance) / 2
}

// distance counts king steps between two cells.
func distance(a, b Cell) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
