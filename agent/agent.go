// Package agent defines the capability contract shared by every player
// kind: a display name, an owned tile color, and the ability to produce
// the next move for a given board.
package agent

import "connectn/game"

type Agent interface {
	Name() string
	Tile() game.Tile
	NextMove(board *game.Board) game.Move
}
