package game

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// GameSummary is the record of a game written out when it ends. It is never
// read back to resume a game.
type GameSummary struct {
	ID          string      `yaml:"id"`
	MaxTurns    int         `yaml:"max_turns"`
	Scoring     ScoringRule `yaml:"scoring"`
	State       string      `yaml:"state"`
	TurnsPlayed int         `yaml:"turns_played"`
	// Only present once the game has finished
	Code       *Row    `yaml:"code,omitempty"`
	Guesses    []Row   `yaml:"guesses,flow"`
	Scores     []Score `yaml:"scores,flow"`
	FinishedAt string  `yaml:"finished_at,omitempty"`
}

func (game *Game) Summary() GameSummary {
	summary := GameSummary{
		ID:          game.id,
		MaxTurns:    game.maxTurns,
		Scoring:     game.rule,
		State:       game.State().String(),
		TurnsPlayed: game.TurnsPlayed(),
		Guesses:     game.Guesses(),
		Scores:      game.Scores(),
	}

	if code, revealed := game.Reveal(); revealed {
		summary.Code = &code
		summary.FinishedAt = game.finishedAt.Format(time.RFC3339)
	}
	return summary
}

func (summary GameSummary) Serialize() ([]byte, error) {
	out, err := yaml.Marshal(summary)
	if err != nil {
		return nil, errors.Wrap(err, "serializing game summary")
	}
	return out, nil
}
