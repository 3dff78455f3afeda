package engine

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"connectn/agent"
	"connectn/game"
)

// MaxTurns bounds the game loop against runaway non-terminating
// configurations. Reaching it ends the loop without declaring a result.
const MaxTurns = 1000

// Outcome is the end state of a match. Result carries the winning tile's
// signed value, or 0 for a draw, and is only meaningful when Finished.
type Outcome struct {
	Result   game.Tile
	Finished bool
	Turns    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithOutput directs board rendering and announcements to w. Benchmarks
// leave the default, io.Discard.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

// Engine drives one match between two opposing agents on the
// authoritative board. It owns the board; the agents are referenced, not
// owned. Each agent must hold the tile its seat implies; a game whose
// agents share a tile is mis-constructed, a caller contract this type
// does not re-check.
type Engine struct {
	id       uuid.UUID
	board    *game.Board
	positive agent.Agent
	negative agent.Agent
	current  agent.Agent
	out      io.Writer
}

// New creates an engine for one match. The Positive agent moves first.
func New(board *game.Board, positive, negative agent.Agent, options ...Option) *Engine {
	e := &Engine{
		id:       uuid.New(),
		board:    board,
		positive: positive,
		negative: negative,
		current:  positive,
		out:      io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// ID identifies this match in logs and metric records.
func (e *Engine) ID() uuid.UUID { return e.id }

// Board exposes the authoritative board, for rendering and inspection.
func (e *Engine) Board() *game.Board { return e.board }

// Run executes the game loop until a win or draw is detected or MaxTurns
// is reached.
func (e *Engine) Run() Outcome {
	log.Info().Str("game", e.id.String()).Str("player", e.current.Name()).Msg("game started")

	for turn := 1; turn <= MaxTurns; turn++ {
		Render(e.out, e.board)
		fmt.Fprintf(e.out, "It is %s's Turn\n", e.current.Name())

		result, terminal := e.makeMove()
		if terminal {
			e.announce(result)
			Render(e.out, e.board)
			log.Info().Str("game", e.id.String()).
				Int("turns", turn).
				Int("result", int(result)).
				Msg("game over")
			return Outcome{Result: result, Finished: true, Turns: turn}
		}
	}

	log.Warn().Str("game", e.id.String()).Msgf("no result after %d turns", MaxTurns)
	return Outcome{Turns: MaxTurns}
}

// makeMove asks the active agent for a move. A legal move is applied,
// the turn passes, and only the lines through the move are re-evaluated.
// An illegal move leaves the board and turn unchanged and re-evaluates
// the whole board as this turn's terminal check instead.
func (e *Engine) makeMove() (game.Tile, bool) {
	move := e.current.NextMove(e.board)

	if e.board.Place(move) {
		e.swapPlayers()
		result, terminal, _ := game.EvaluateMove(e.board, move.Pos)
		return result, terminal
	}

	log.Warn().Str("game", e.id.String()).
		Str("player", e.current.Name()).
		Msgf("rejected move %+v", move)
	result, terminal, _ := game.Evaluate(e.board)
	return result, terminal
}

func (e *Engine) swapPlayers() {
	switch e.current {
	case e.positive:
		e.current = e.negative
	case e.negative:
		e.current = e.positive
	default:
		panic("current player matches neither registered player")
	}
}

func (e *Engine) announce(result game.Tile) {
	switch result {
	case game.Positive:
		fmt.Fprintf(e.out, "Player %s has won!\n", e.positive.Name())
	case game.Empty:
		fmt.Fprintln(e.out, "It's a draw!")
	case game.Negative:
		fmt.Fprintf(e.out, "Player %s has won!\n", e.negative.Name())
	default:
		panic(fmt.Sprintf("invalid game result: %d", int(result)))
	}
}
