package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Difficulty is the number of turns the player gets to break the code
type Difficulty int

const (
	Easy   Difficulty = 12
	Medium Difficulty = 10
	Hard   Difficulty = 8
	Ray    Difficulty = 1
)

// Difficulties in the order they are offered to the player
var Difficulties = []Difficulty{Easy, Medium, Hard, Ray}

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
	Ray:    "ray",
}

func (difficulty Difficulty) Turns() int {
	return int(difficulty)
}

func (difficulty Difficulty) String() string {
	if name, ok := difficultyNames[difficulty]; ok {
		return name
	}
	return "custom"
}

func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, difficulty := range Difficulties {
		if difficultyNames[difficulty] == s {
			return difficulty, nil
		}
	}
	return 0, errors.Errorf("unknown difficulty %q (want easy, medium, hard or ray)", s)
}

func (difficulty Difficulty) MarshalYAML() (interface{}, error) {
	return difficulty.String(), nil
}

func (difficulty *Difficulty) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(name)
	if err != nil {
		return err
	}
	*difficulty = parsed
	return nil
}
