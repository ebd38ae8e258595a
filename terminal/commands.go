package terminal

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/gomastermind/game"
)

type commandKind int

const (
	addPeg commandKind = iota
	backspace
	clearRow
	submit
	newGame
	quit
	help
)

type command struct {
	kind commandKind
	peg  game.Peg
}

var keywords = map[string]commandKind{
	"<":         backspace,
	"back":      backspace,
	"backspace": backspace,
	"clear":     clearRow,
	"go":        submit,
	"guess":     submit,
	"new":       newGame,
	"quit":      quit,
	"exit":      quit,
	"help":      help,
	"?":         help,
}

// parseToken turns one input word into commands. Besides keywords and peg
// names, a run of peg letters such as "rrby" places several pegs at once.
func parseToken(token string) ([]command, error) {
	token = strings.ToLower(token)

	if kind, ok := keywords[token]; ok {
		return []command{{kind: kind}}, nil
	}
	if peg, err := game.ParsePeg(token); err == nil {
		return []command{{kind: addPeg, peg: peg}}, nil
	}

	commands := make([]command, 0, len(token))
	for _, letter := range token {
		peg, err := game.ParsePeg(string(letter))
		if err != nil {
			return nil, errors.Errorf("unknown command %q", token)
		}
		commands = append(commands, command{kind: addPeg, peg: peg})
	}
	return commands, nil
}

const helpText = `Build a guess of 4 pegs, then submit it.
  colors    white red purple yellow blue cyan (or w r p y b c, e.g. "rrby")
  <, back   remove the last peg
  clear     remove every peg from the row
  go        submit the row once it holds 4 pegs
  new       start a new game
  quit      leave
Key pegs: R = right color in the right place, W = right color elsewhere.
`
