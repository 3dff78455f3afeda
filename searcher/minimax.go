package searcher

import (
	"math"

	"connectn/experiments/metrics"
	"connectn/game"
)

// Minimax is a depth-bounded adversarial searcher with alpha-beta pruning.
// It shares one board across the whole recursion, applying moves in place
// and undoing them on the way back up, so the search allocates no board
// copies below the top-level clone.
type Minimax struct {
	depth   int
	tile    game.Tile
	metrics metrics.Collector
}

// NewMinimax builds a searcher for the given color and search depth. A nil
// collector disables instrumentation.
func NewMinimax(tile game.Tile, depth int, collector metrics.Collector) *Minimax {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Minimax{
		depth:   depth,
		tile:    tile,
		metrics: collector,
	}
}

// FindMove searches the position and returns the best move found. The
// authoritative board is cloned once so the search never mutates it.
func (s *Minimax) FindMove(b *game.Board) game.Move {
	s.metrics.Start()
	_, move := s.alphabeta(b.Clone(), math.MinInt64, math.MaxInt64, s.depth, false)
	s.metrics.Complete()
	return move
}

func (s *Minimax) alphabeta(b *game.Board, alpha, beta int64, depth int, enemy bool) (int64, game.Move) {
	s.metrics.AddNode()

	_, terminal, score := game.Evaluate(b)
	if depth == 0 || terminal {
		return score, game.Move{}
	}

	currentTile := s.tile
	if enemy {
		currentTile = s.tile.Enemy()
	}

	// Polarity follows the sign convention: the Positive color maximizes.
	maximizing := (s.tile == game.Positive) != enemy

	positions := b.ValidPositions()
	if len(positions) == 0 {
		panic("no valid positions on a non-terminal board")
	}

	resultMove := game.Move{Pos: positions[0], Tile: currentTile}
	if maximizing {
		maxValue := int64(math.MinInt64)
		for _, p := range positions {
			m := game.Move{Pos: p, Tile: currentTile}
			b.Place(m)
			value, _ := s.alphabeta(b, alpha, beta, depth-1, !enemy)
			b.Remove(m)

			if value > maxValue {
				maxValue = value
				resultMove = m
			}
			alpha = max(alpha, value)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return maxValue, resultMove
	}

	minValue := int64(math.MaxInt64)
	for _, p := range positions {
		m := game.Move{Pos: p, Tile: currentTile}
		b.Place(m)
		value, _ := s.alphabeta(b, alpha, beta, depth-1, !enemy)
		b.Remove(m)

		if value < minValue {
			minValue = value
			resultMove = m
		}
		beta = min(beta, value)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return minValue, resultMove
}
