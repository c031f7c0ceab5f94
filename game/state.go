package game

import "fmt"

// LegalMoves returns every move available to side. A side without a single
// real move must pass, so it gets one pass move per held card instead.
func (gs *GameState) LegalMoves(side Side) []Move {
	hand := gs.Hands[side]

	var moves []Move
	for _, card := range hand {
		moves = append(moves, gs.CardMoves(card)...)
	}
	if len(moves) > 0 {
		return moves
	}

	return []Move{NewPass(hand[0]), NewPass(hand[1])}
}

// CardMoves returns the moves card allows for every active piece.
func (gs *GameState) CardMoves(card *Card) []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if gs.Board[x][y] > 0 {
				moves = append(moves, gs.PieceMoves(card, Cell{X: x, Y: y})...)
			}
		}
	}
	return moves
}

// PieceMoves returns the moves card allows for the piece on from. A destination
// is legal when it is on the board and not held by an active piece; moving onto
// an opposing piece captures it.
func (gs *GameState) PieceMoves(card *Card, from Cell) []Move {
	var moves []Move
	for _, offset := range card.Moves {
		to := from.Add(offset)
		if to.InBounds() && gs.Board.At(to) <= Empty {
			moves = append(moves, Move{Card: card, From: from, To: to})
		}
	}
	return moves
}

// ApplyMove plays move for side and hands the turn to the other side. With
// visual set, the move is also recorded in History, reflected on Display and
// announced to observers. Playing a card side does not hold panics.
func (gs *GameState) ApplyMove(side Side, move Move, visual bool) {
	gs.rotateCards(side, move.Card)

	if !move.IsPass() {
		piece := gs.Board.At(move.From)
		gs.Board.Set(move.From, Empty)
		gs.Board.Set(move.To, piece)
	}

	if visual {
		gs.History = append(gs.History, gs.snapshotFor(gs.Active.Opponent()))
	}

	gs.CheckForWin()

	if visual {
		gs.refreshDisplay(side == gs.TopOfBoard)
	}

	gs.SwitchPlayer()
}

// rotateCards swaps the played card with the flex card.
func (gs *GameState) rotateCards(side Side, played *Card) {
	hand := gs.Hands[side]
	var kept *Card
	switch played {
	case hand[0]:
		kept = hand[1]
	case hand[1]:
		kept = hand[0]
	default:
		panic(fmt.Sprintf("cannot remove card %q from the %s player", played, side))
	}

	gs.Hands[side] = [HandSize]*Card{kept, gs.Flex}
	gs.Flex = played
}

// SwitchPlayer flips the board to the other side's perspective and passes
// the turn.
func (gs *GameState) SwitchPlayer() {
	gs.Board = gs.Board.Invert()
	gs.Active = gs.Active.Opponent()
}

// CheckForWin awards the game to the active side when its master stands on the
// temple or the opposing master has been captured.
func (gs *GameState) CheckForWin() {
	if gs.Board.At(Temple) == Master || !gs.Board.Contains(-Master) {
		gs.Status = winFor(gs.Active)
	}
}

func (gs *GameState) refreshDisplay(invert bool) {
	if invert {
		gs.Display = gs.Board.Invert()
	} else {
		gs.Display = gs.Board
	}
	gs.notify()
}
