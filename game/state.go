package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Game holds a single game from the secret code to its end. It is not safe
// for concurrent use.
type Game struct {
	id   string
	rand *rand.Rand

	code     Row
	maxTurns int
	rule     ScoringRule

	guesses []Row
	scores  []Score

	finished, won bool
	finishedAt    time.Time

	onGameEnd func(*Game)
}

// New starts a game with a time-seeded secret code
func New(maxTurns int) *Game {
	return NewWithRand(maxTurns, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand starts a game whose secret code is drawn from rnd
func NewWithRand(maxTurns int, rnd *rand.Rand) *Game {
	game := newGame(maxTurns, rnd)
	game.code = GenerateCode(rnd)
	return game
}

// NewWithCode starts a game with a known secret code
func NewWithCode(maxTurns int, code Row) *Game {
	game := newGame(maxTurns, rand.New(rand.NewSource(time.Now().UnixNano())))
	game.code = code
	return game
}

func newGame(maxTurns int, rnd *rand.Rand) *Game {
	if maxTurns < 1 {
		maxTurns = 1
	}
	return &Game{
		id:       uuid.New().String(),
		rand:     rnd,
		maxTurns: maxTurns,
		rule:     Classic,
		guesses:  make([]Row, 0, maxTurns),
		scores:   make([]Score, 0, maxTurns),
	}
}

// GenerateCode draws every peg independently, so colors may repeat
func GenerateCode(rnd *rand.Rand) Row {
	var code Row
	for i := range code {
		code[i] = Colors[rnd.Intn(len(Colors))]
	}
	return code
}

// TakeTurn records and scores a guess. Once the game has finished it does
// nothing.
func (game *Game) TakeTurn(guess Row) {
	if game.finished {
		return
	}

	score := ScoreGuess(game.code, guess, game.rule)
	game.guesses = append(game.guesses, guess)
	game.scores = append(game.scores, score)

	if score.Solved() {
		game.won = true
		game.finished = true
	}
	if len(game.guesses) >= game.maxTurns {
		game.finished = true
	}

	if game.finished {
		game.endGame()
	}
}

func (game *Game) endGame() {
	game.finishedAt = time.Now()
	if game.onGameEnd != nil {
		game.onGameEnd(game)
	}
}

func (game *Game) ID() string {
	return game.id
}

func (game *Game) Rule() ScoringRule {
	return game.rule
}

func (game *Game) TurnsPlayed() int {
	return len(game.guesses)
}

func (game *Game) MaxTurns() int {
	return game.maxTurns
}

func (game *Game) TurnsLeft() int {
	return game.maxTurns - len(game.guesses)
}

// Guesses returns a copy of every guess played so far, oldest first
func (game *Game) Guesses() []Row {
	guesses := make([]Row, len(game.guesses))
	copy(guesses, game.guesses)
	return guesses
}

// Scores returns a copy of the score of each guess, parallel to Guesses
func (game *Game) Scores() []Score {
	scores := make([]Score, len(game.scores))
	copy(scores, game.scores)
	return scores
}

// LastScore returns the score of the latest guess, if any guess was made
func (game *Game) LastScore() (Score, bool) {
	if len(game.scores) == 0 {
		return Score{}, false
	}
	return game.scores[len(game.scores)-1], true
}

func (game *Game) Finished() bool {
	return game.finished
}

func (game *Game) Won() bool {
	return game.won
}

func (game *Game) State() GameState {
	switch {
	case game.won:
		return Won
	case game.finished:
		return Lost
	default:
		return Ongoing
	}
}

// Code returns the secret code. Frontends should only show it once the game
// has finished; see Reveal.
func (game *Game) Code() Row {
	return game.code
}

// Reveal returns the secret code once the game has finished
func (game *Game) Reveal() (Row, bool) {
	if !game.finished {
		return Row{}, false
	}
	return game.code, true
}

// NextSeed draws a seed for a follow-up game from this game's generator
func (game *Game) NextSeed() int64 {
	return game.rand.Int63()
}
