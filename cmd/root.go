package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomastermind/game"
	"github.com/they4kman/gomastermind/terminal"
	"golang.org/x/term"
)

var gameConfig = game.NewGameConfig()
var configPath string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gomastermind",
	Short: "Break a hidden code of colored pegs",
	Long: `gomastermind hides a code of 4 colored pegs and gives you a number of
turns to find it. Every guess is answered with key pegs: one red for each
peg of the right color in the right place, one white for each peg of a
color found elsewhere in the code.

Play on easy (12 turns)
	gomastermind

Pick a harder game, scored like the board game
	gomastermind --difficulty hard --scoring canonical
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		color := !config.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
		logrus.WithFields(logrus.Fields{
			"turns":   config.MaxTurns(),
			"scoring": config.Scoring,
			"color":   color,
		}).Debug("starting session")

		session := terminal.NewSession(config, os.Stdin, os.Stdout, color)
		return session.Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file, if any, under the flags that were
// set explicitly on the command line
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if configPath == "" {
		return gameConfig, nil
	}

	config, err := game.LoadConfig(configPath)
	if err != nil {
		return config, err
	}
	logrus.WithField("path", configPath).Debug("loaded config")

	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		config.Difficulty = gameConfig.Difficulty
	}
	if flags.Changed("turns") {
		config.Turns = gameConfig.Turns
	}
	if flags.Changed("scoring") {
		config.Scoring = gameConfig.Scoring
	}
	if flags.Changed("seed") {
		config.Seed = gameConfig.Seed
	}
	if flags.Changed("summaries-dir") {
		config.SavedSummariesDir = gameConfig.SavedSummariesDir
	}
	if flags.Changed("no-color") {
		config.NoColor = gameConfig.NoColor
	}
	return config, nil
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (val *difficultyValue) String() string {
	return game.Difficulty(*val).String()
}

func (val *difficultyValue) Set(value string) error {
	difficulty, err := game.ParseDifficulty(value)
	if err != nil {
		return err
	}
	*val = difficultyValue(difficulty)
	return nil
}

func (val *difficultyValue) Type() string {
	return "game.Difficulty"
}

type scoringRuleValue game.ScoringRule

func newScoringRuleValue(val game.ScoringRule, p *game.ScoringRule) *scoringRuleValue {
	*p = val
	return (*scoringRuleValue)(p)
}

func (val *scoringRuleValue) String() string {
	return game.ScoringRule(*val).String()
}

func (val *scoringRuleValue) Set(value string) error {
	rule, err := game.ParseScoringRule(value)
	if err != nil {
		return err
	}
	*val = scoringRuleValue(rule)
	return nil
}

func (val *scoringRuleValue) Type() string {
	return "game.ScoringRule"
}

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a yaml config file; flags override its values")
	rootCmd.Flags().VarP(newDifficultyValue(game.Easy, &gameConfig.Difficulty), "difficulty", "d", `Number of turns to break the code:
easy: 12, medium: 10, hard: 8, ray: 1`)
	rootCmd.Flags().IntVarP(&gameConfig.Turns, "turns", "t", 0, "Custom number of turns, overriding the difficulty")
	rootCmd.Flags().Var(newScoringRuleValue(game.Classic, &gameConfig.Scoring), "scoring", `How color-only key pegs are counted:
classic: a misplaced guess peg counts whenever its color is anywhere in the code
canonical: colors are matched one-to-one, as in the board game`)
	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for the secret code (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&gameConfig.SavedSummariesDir, "summaries-dir", "", "Directory to save a yaml summary of every finished game into")
	rootCmd.Flags().BoolVar(&gameConfig.NoColor, "no-color", false, "Draw pegs as letters instead of colors")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every turn")
}
