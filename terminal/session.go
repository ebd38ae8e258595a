package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gammazero/deque"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomastermind/game"
)

// Session plays games in a line-oriented terminal. It owns the current game
// and the row being built for it.
type Session struct {
	config game.GameConfig

	game *game.Game
	row  *game.RowBuilder

	// Pending commands, oldest first
	commands deque.Deque

	in  *bufio.Scanner
	out io.Writer
	ui  renderer

	done bool
}

func NewSession(config game.GameConfig, in io.Reader, out io.Writer, color bool) *Session {
	session := &Session{
		row: game.NewRowBuilder(),
		in:  bufio.NewScanner(in),
		out: out,
		ui:  renderer{color: color},
	}

	onGameEnd := config.OnGameEnd
	config.OnGameEnd = func(g *game.Game) {
		session.logGameEnd(g)
		if onGameEnd != nil {
			onGameEnd(g)
		}
	}
	session.config = config

	session.startGame()
	return session
}

func (session *Session) Game() *game.Game {
	return session.game
}

func (session *Session) Row() *game.RowBuilder {
	return session.row
}

// Done reports whether the player has asked to leave
func (session *Session) Done() bool {
	return session.done
}

// Run reads commands until the player quits or the input ends
func (session *Session) Run() error {
	session.render()

	for !session.done {
		fmt.Fprint(session.out, "> ")
		if !session.in.Scan() {
			break
		}
		if err := session.Queue(session.in.Text()); err != nil {
			fmt.Fprintln(session.out, err)
			continue
		}
		session.Drain()
		session.render()
	}

	if err := session.in.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return nil
}

// Queue parses a line of input and queues its commands. Nothing is queued if
// any word in the line is not understood.
func (session *Session) Queue(line string) error {
	var parsed []command
	for _, token := range strings.Fields(line) {
		commands, err := parseToken(token)
		if err != nil {
			return err
		}
		parsed = append(parsed, commands...)
	}

	for _, cmd := range parsed {
		session.commands.PushBack(cmd)
	}
	return nil
}

// Drain executes every queued command in order
func (session *Session) Drain() {
	for session.commands.Len() > 0 && !session.done {
		cmd := session.commands.PopFront().(command)
		session.execute(cmd)
	}
}

func (session *Session) execute(cmd command) {
	switch cmd.kind {
	case newGame:
		session.config.Seed = session.game.NextSeed()
		session.startGame()
		return
	case quit:
		session.done = true
		return
	case help:
		fmt.Fprint(session.out, helpText)
		return
	}

	if session.game.Finished() {
		fmt.Fprintln(session.out, `The game is over; type "new" to play again.`)
		return
	}

	switch cmd.kind {
	case addPeg:
		session.row.AddPeg(cmd.peg)
	case backspace:
		session.row.Backspace()
	case clearRow:
		session.row.Reset()
	case submit:
		session.submit()
	}
}

func (session *Session) submit() {
	if !session.row.IsComplete() {
		fmt.Fprintf(session.out, "The row needs %d pegs before it can be submitted.\n", game.CodeLength)
		return
	}

	session.game.TakeTurn(session.row.Line())
	session.row.Reset()

	score, _ := session.game.LastScore()
	session.logger().WithFields(logrus.Fields{
		"turn":      session.game.TurnsPlayed(),
		"exact":     score.Exact,
		"colorOnly": score.ColorOnly,
	}).Debug("turn taken")
}

func (session *Session) startGame() {
	session.game = session.config.NewGame()
	session.row.Reset()

	session.logger().WithFields(logrus.Fields{
		"turns":   session.game.MaxTurns(),
		"scoring": session.game.Rule(),
	}).Debug("game started")
}

func (session *Session) logGameEnd(g *game.Game) {
	logrus.WithField("game", g.ID()).WithFields(logrus.Fields{
		"state": g.State(),
		"turns": g.TurnsPlayed(),
	}).Info("game over")
}

func (session *Session) logger() *logrus.Entry {
	return logrus.WithField("game", session.game.ID())
}

func (session *Session) render() {
	session.ui.board(session.out, session.game, session.row.Line())
}
