package display

import (
	"fmt"
	"io"
	"strings"

	"onitama/game"

	"github.com/muesli/termenv"
)

var pieces = map[int8]string{
	game.Empty:   ".",
	game.Pawn:    "r",
	game.Master:  "R",
	-game.Pawn:   "b",
	-game.Master: "B",
}

type Option func(r *Renderer)

// WithProfile overrides the color profile detected from the writer.
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = &profile
	}
}

// Renderer draws the display board of a game, Red at the bottom.
type Renderer struct {
	w       io.Writer
	out     *termenv.Output
	profile *termenv.Profile
}

func New(w io.Writer, options ...Option) *Renderer {
	r := &Renderer{w: w}
	for _, option := range options {
		option(r)
	}

	var outputOptions []termenv.OutputOption
	if r.profile != nil {
		outputOptions = append(outputOptions, termenv.WithProfile(*r.profile))
	}
	r.out = termenv.NewOutput(w, outputOptions...)
	return r
}

func (r *Renderer) side(side game.Side, s string) string {
	color := "1"
	if side == game.Blue {
		color = "4"
	}
	return r.out.String(s).Foreground(r.out.Color(color)).String()
}

func (r *Renderer) piece(v int8) string {
	switch {
	case v > 0:
		return r.side(game.Red, pieces[v])
	case v < 0:
		return r.side(game.Blue, pieces[v])
	}
	return pieces[v]
}

func (r *Renderer) hand(gs *game.GameState, side game.Side) string {
	hand := gs.Hands[side]
	return fmt.Sprintf("%s: %s %s", r.side(side, side.String()), hand[0], hand[1])
}

// Render returns the board with both hands, the flex card and the game status.
func (r *Renderer) Render(gs *game.GameState) string {
	return r.render(gs, gs.Active)
}

func (r *Renderer) render(gs *game.GameState, toMove game.Side) string {
	var sb strings.Builder
	sb.WriteString(r.hand(gs, game.Blue) + "\n")
	for y := game.Size - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d", y)
		for x := 0; x < game.Size; x++ {
			sb.WriteString(" " + r.piece(gs.Display[x][y]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  0 1 2 3 4\n")
	sb.WriteString(r.hand(gs, game.Red) + "\n")
	fmt.Fprintf(&sb, "flex: %s\n", gs.Flex)

	if winner, ok := gs.Winner(); ok {
		sb.WriteString(r.out.String(winner.String() + " wins").Bold().String())
	} else {
		sb.WriteString(r.side(toMove, toMove.String()) + " to move")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Observe writes the rendered game from a GameState.OnUpdate callback, for
// example through engine.WithObserver. Observers run before the turn passes,
// so the side to move is the opponent of gs.Active.
func (r *Renderer) Observe(gs *game.GameState) {
	fmt.Fprintln(r.w, r.render(gs, gs.Active.Opponent()))
}
