package agent

import (
	"connectn/game"
	"connectn/searcher"
)

// MonteCarlo plays with Monte Carlo Tree Search.
type MonteCarlo struct {
	name   string
	tile   game.Tile
	search *searcher.MCTS
}

func NewMonteCarlo(name string, tile game.Tile, options ...searcher.Option) *MonteCarlo {
	return &MonteCarlo{
		name:   name,
		tile:   tile,
		search: searcher.NewMCTS(tile, options...),
	}
}

func (m *MonteCarlo) Name() string    { return m.name }
func (m *MonteCarlo) Tile() game.Tile { return m.tile }

func (m *MonteCarlo) NextMove(board *game.Board) game.Move {
	return m.search.FindMove(board)
}
