package game

import (
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Difficulty Difficulty `yaml:"difficulty"`
	// Overrides the number of turns given by Difficulty, when positive
	Turns   int         `yaml:"turns"`
	Scoring ScoringRule `yaml:"scoring"`

	// Seed for the secret code; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Path to directory where summaries of finished games should be saved
	SavedSummariesDir string `yaml:"summaries_dir"`

	// Disable colored output, even on a terminal
	NoColor bool `yaml:"no_color"`

	// Called once a game created from this config has finished
	OnGameEnd func(*Game) `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Difficulty: Easy,
		Turns:      0,
		Scoring:    Classic,
		Seed:       0,
	}
}

// LoadConfig reads a yaml config file over the defaults from NewGameConfig
func LoadConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := ioutil.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}

// MaxTurns is the turn budget of games created from this config
func (config GameConfig) MaxTurns() int {
	if config.Turns > 0 {
		return config.Turns
	}
	return config.Difficulty.Turns()
}

func (config GameConfig) NewGame() *Game {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := NewWithRand(config.MaxTurns(), rand.New(rand.NewSource(seed)))
	game.rule = config.Scoring
	game.onGameEnd = config.onGameEnd
	return game
}

func (config GameConfig) onGameEnd(game *Game) {
	if config.SavedSummariesDir != "" {
		path, err := config.saveSummary(game)
		if err != nil {
			logrus.WithError(err).Error("could not save game summary")
		} else {
			logrus.WithField("path", path).Debug("saved game summary")
		}
	}

	if config.OnGameEnd != nil {
		config.OnGameEnd(game)
	}
}

func (config GameConfig) saveSummary(game *Game) (string, error) {
	stat, err := os.Stat(config.SavedSummariesDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrap(err, "checking summaries dir")
		}
		if err := os.MkdirAll(config.SavedSummariesDir, 0777); err != nil {
			return "", errors.Wrap(err, "creating summaries dir")
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save summaries to it", config.SavedSummariesDir)
	}

	out, err := game.Summary().Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(config.SavedSummariesDir, generateSummaryFilename(game, game.finishedAt))
	if err := ioutil.WriteFile(path, out, 0666); err != nil {
		return "", errors.Wrapf(err, "writing summary %s", path)
	}
	return path, nil
}

func generateSummaryFilename(game *Game, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch game.State() {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	// Games ending within the same second still get distinct files
	filenameBuilder.WriteString("_")
	filenameBuilder.WriteString(game.id[:8])

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
