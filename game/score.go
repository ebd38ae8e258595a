package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/gomastermind/util/collections"
)

// Score is the key-peg feedback for a single guess
type Score struct {
	// Pegs of the right color in the right position
	Exact int `yaml:"exact"`
	// Pegs of a color present in the code, but not in that position
	ColorOnly int `yaml:"color_only"`
}

func (score Score) String() string {
	return fmt.Sprintf("%d-%d", score.Exact, score.ColorOnly)
}

func (score Score) Solved() bool {
	return score.Exact == CodeLength
}

// KeyPegs lays out the score the way it is shown on the board: a red key peg
// per exact match, then a white one per color-only match
func (score Score) KeyPegs() [CodeLength]KeyPeg {
	var keys [CodeLength]KeyPeg
	i := 0
	for n := 0; n < score.Exact && i < CodeLength; n++ {
		keys[i] = KeyRed
		i++
	}
	for n := 0; n < score.ColorOnly && i < CodeLength; n++ {
		keys[i] = KeyWhite
		i++
	}
	return keys
}

type ScoringRule int

const (
	// Classic counts a mismatched guess peg as color-only whenever its color
	// occurs anywhere in the code, so repeated guess colors may be counted
	// against the same code peg more than once.
	Classic ScoringRule = iota
	// Canonical matches colors as multisets once exact matches are removed,
	// as in the board game.
	Canonical
)

var scoringRuleNames = map[ScoringRule]string{
	Classic:   "classic",
	Canonical: "canonical",
}

func (rule ScoringRule) String() string {
	if name, ok := scoringRuleNames[rule]; ok {
		return name
	}
	return fmt.Sprint(int(rule))
}

func ParseScoringRule(s string) (ScoringRule, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for rule, name := range scoringRuleNames {
		if name == s {
			return rule, nil
		}
	}
	return Classic, errors.Errorf("unknown scoring rule %q (want classic or canonical)", s)
}

func (rule ScoringRule) MarshalYAML() (interface{}, error) {
	return rule.String(), nil
}

func (rule *ScoringRule) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseScoringRule(name)
	if err != nil {
		return err
	}
	*rule = parsed
	return nil
}

// ScoreGuess compares a guess against the code under the given rule
func ScoreGuess(code, guess Row, rule ScoringRule) Score {
	if rule == Canonical {
		return scoreCanonical(code, guess)
	}
	return scoreClassic(code, guess)
}

func scoreClassic(code, guess Row) Score {
	var score Score
	codeColors := collections.NewSet(code[:]...)

	for i, peg := range guess {
		if peg == code[i] {
			score.Exact++
		} else if codeColors.Contains(peg) {
			score.ColorOnly++
		}
	}
	return score
}

func scoreCanonical(code, guess Row) Score {
	var score Score
	remainingCode := collections.NewMultiset[Peg]()
	remainingGuess := collections.NewMultiset[Peg]()

	for i, peg := range guess {
		if peg == code[i] {
			score.Exact++
		} else {
			remainingCode.Add(code[i])
			remainingGuess.Add(peg)
		}
	}
	score.ColorOnly = remainingGuess.Overlap(remainingCode)
	return score
}
