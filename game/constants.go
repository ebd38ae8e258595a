package game

import (
	"strings"

	"github.com/pkg/errors"
)

type Peg int
type KeyPeg int
type GameState int

const CodeLength = 4

const (
	Empty Peg = iota
	White
	Red
	Purple
	Yellow
	Blue
	Cyan
)

// Colors lists every peg a code can be made of; Empty is never one of them
var Colors = []Peg{
	White,
	Red,
	Purple,
	Yellow,
	Blue,
	Cyan,
}

var pegNames = map[Peg]string{
	Empty:  "empty",
	White:  "white",
	Red:    "red",
	Purple: "purple",
	Yellow: "yellow",
	Blue:   "blue",
	Cyan:   "cyan",
}

var pegShorthands = map[string]Peg{
	"w": White,
	"r": Red,
	"p": Purple,
	"y": Yellow,
	"b": Blue,
	"c": Cyan,
}

func (peg Peg) String() string {
	if name, ok := pegNames[peg]; ok {
		return name
	}
	return "invalid"
}

// Letter is the single-character shorthand for a peg, "." for Empty
func (peg Peg) Letter() string {
	if peg == Empty {
		return "."
	}
	if !peg.IsColor() {
		return "?"
	}
	return pegNames[peg][:1]
}

// IsColor reports whether the peg is one of the six code colors
func (peg Peg) IsColor() bool {
	return peg >= White && peg <= Cyan
}

// ParsePeg accepts a color name or its single-letter shorthand
func ParsePeg(s string) (Peg, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if peg, ok := pegShorthands[s]; ok {
		return peg, nil
	}
	for _, peg := range Colors {
		if pegNames[peg] == s {
			return peg, nil
		}
	}
	return Empty, errors.Errorf("unknown peg color %q", s)
}

const (
	KeyEmpty KeyPeg = iota
	KeyWhite
	KeyRed
)

func (key KeyPeg) String() string {
	switch key {
	case KeyWhite:
		return "white"
	case KeyRed:
		return "red"
	default:
		return "empty"
	}
}

const (
	Ongoing GameState = iota
	Won
	Lost
)

func (state GameState) String() string {
	switch state {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}
