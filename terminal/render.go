package terminal

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/they4kman/gomastermind/game"
)

const ansiReset = "\x1b[0m"

func background(c color.RGBA) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func foreground(c color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

type renderer struct {
	color bool
}

func (r renderer) peg(peg game.Peg) string {
	if !r.color {
		return "[" + strings.ToUpper(peg.Letter()) + "]"
	}
	if peg == game.Empty {
		return background(game.DisplayColor(peg)) + " . " + ansiReset
	}
	return background(game.DisplayColor(peg)) + "   " + ansiReset
}

func (r renderer) row(row game.Row) string {
	var builder strings.Builder
	for _, peg := range row {
		builder.WriteString(r.peg(peg))
	}
	return builder.String()
}

func (r renderer) keyPegs(score game.Score) string {
	var builder strings.Builder
	for _, key := range score.KeyPegs() {
		if r.color {
			symbol := "●"
			if key == game.KeyEmpty {
				symbol = "·"
			}
			builder.WriteString(foreground(game.KeyDisplayColor(key)) + symbol + ansiReset)
			continue
		}
		switch key {
		case game.KeyRed:
			builder.WriteString("R")
		case game.KeyWhite:
			builder.WriteString("W")
		default:
			builder.WriteString(".")
		}
	}
	return builder.String()
}

// board draws every played row, the row being built and the rows still
// available, then the outcome once the game is over.
func (r renderer) board(out io.Writer, g *game.Game, current game.Row) {
	fmt.Fprintf(out, "\nMastermind - %d turns, %d left (%s scoring)\n", g.MaxTurns(), g.TurnsLeft(), g.Rule())

	guesses, scores := g.Guesses(), g.Scores()
	for i := 0; i < g.MaxTurns(); i++ {
		switch {
		case i < len(guesses):
			fmt.Fprintf(out, "%3d  %s  %s  %s\n", i+1, r.row(guesses[i]), r.keyPegs(scores[i]), scores[i])
		case i == len(guesses) && !g.Finished():
			fmt.Fprintf(out, "%3d  %s  <\n", i+1, r.row(current))
		default:
			fmt.Fprintf(out, "%3d  %s\n", i+1, r.row(game.Row{}))
		}
	}

	if code, revealed := g.Reveal(); revealed {
		if g.Won() {
			fmt.Fprintf(out, "\nYou cracked the code in %d turns!\n", g.TurnsPlayed())
		} else {
			fmt.Fprintln(out, "\nOut of turns.")
		}
		fmt.Fprintf(out, "Code: %s  %s\n", r.row(code), code)
		fmt.Fprintln(out, `Type "new" to play again or "quit" to leave.`)
	}
}
