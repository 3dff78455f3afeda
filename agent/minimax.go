package agent

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"
)

// Minimax plays with depth-bounded alpha-beta search.
type Minimax struct {
	name   string
	tile   game.Tile
	search *searcher.Minimax
}

// NewMinimax builds a minimax agent searching to the given depth. A nil
// collector disables search instrumentation.
func NewMinimax(name string, tile game.Tile, depth int, collector metrics.Collector) *Minimax {
	return &Minimax{
		name:   name,
		tile:   tile,
		search: searcher.NewMinimax(tile, depth, collector),
	}
}

func (m *Minimax) Name() string    { return m.name }
func (m *Minimax) Tile() game.Tile { return m.tile }

func (m *Minimax) NextMove(board *game.Board) game.Move {
	return m.search.FindMove(board)
}
