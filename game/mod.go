package game

import "fmt"

// Side identifies one of the two players.
type Side int

const (
	Red Side = iota
	Blue
)

func (s Side) Opponent() Side {
	if s == Red {
		return Blue
	}
	return Red
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide accepts the names produced by Side.String.
func ParseSide(name string) (Side, error) {
	switch name {
	case "red", "Red", "RED":
		return Red, nil
	case "blue", "Blue", "BLUE":
		return Blue, nil
	}
	return Red, fmt.Errorf("unknown side %q", name)
}

type Status int

const (
	Playing Status = iota
	RedWins
	BlueWins
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case RedWins:
		return "red wins"
	case BlueWins:
		return "blue wins"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func winFor(side Side) Status {
	if side == Red {
		return RedWins
	}
	return BlueWins
}

// Evaluates a game state that has not terminated to a score from the active
// side's perspective. Positive values favor the active side.
type Evaluate func(*GameState) float64
