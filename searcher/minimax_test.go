package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connectn/experiments/metrics"
	"connectn/game"
)

// threeInARow sets up a 6x7 board with Positive tiles at row 5, columns
// 0-2, and Negative replies scattered so no two of them align into a
// threat of their own.
func threeInARow(t *testing.T) *game.Board {
	t.Helper()

	b := game.NewBoard(6, 7)
	moves := []game.Move{
		{Pos: game.Position{Col: 0, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 5, Row: 5}, Tile: game.Negative},
		{Pos: game.Position{Col: 1, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 5}, Tile: game.Negative},
		{Pos: game.Position{Col: 2, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 4}, Tile: game.Negative},
	}
	for _, m := range moves {
		require.True(t, b.Place(m))
	}
	return b
}

func TestMinimaxTakesWinningMove(t *testing.T) {
	b := threeInARow(t)

	// Depths stay shallow enough that no earlier column is also a forced
	// win; a tie at the saturated score keeps the first-found column.
	for _, depth := range []int{1, 2, 4} {
		s := NewMinimax(game.Positive, depth, nil)
		move := s.FindMove(b)

		require.Equal(t, game.Move{Pos: game.Position{Col: 3, Row: 5}, Tile: game.Positive}, move,
			"depth %d should find the immediate win", depth)
	}

	// The committed move must be terminal for Positive.
	require.True(t, b.Place(game.Move{Pos: game.Position{Col: 3, Row: 5}, Tile: game.Positive}))
	result, terminal, _ := game.EvaluateMove(b, game.Position{Col: 3, Row: 5})
	require.True(t, terminal)
	require.Equal(t, game.Positive, result)
}

func TestMinimaxBlocksOpponentWin(t *testing.T) {
	b := threeInARow(t)

	s := NewMinimax(game.Negative, 2, nil)
	move := s.FindMove(b)

	require.Equal(t, game.Position{Col: 3, Row: 5}, move.Pos,
		"Negative must block the open three")
	require.Equal(t, game.Negative, move.Tile)
}

func TestMinimaxPrefersOwnWinOverBlock(t *testing.T) {
	// Positive threatens at (3,5), but Negative has three stacked in
	// column 6 and completes its own vertical win instead of blocking.
	b := game.NewBoard(6, 7)
	moves := []game.Move{
		{Pos: game.Position{Col: 0, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 5}, Tile: game.Negative},
		{Pos: game.Position{Col: 1, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 4}, Tile: game.Negative},
		{Pos: game.Position{Col: 2, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 3}, Tile: game.Negative},
	}
	for _, m := range moves {
		require.True(t, b.Place(m))
	}

	s := NewMinimax(game.Negative, 2, nil)
	move := s.FindMove(b)

	require.Equal(t, game.Move{Pos: game.Position{Col: 6, Row: 2}, Tile: game.Negative}, move)
}

func TestMinimaxDoesNotMutateBoard(t *testing.T) {
	b := threeInARow(t)
	before := b.Clone()

	NewMinimax(game.Positive, 5, nil).FindMove(b)

	require.Equal(t, before, b)
}

func TestMinimaxCollectsMetrics(t *testing.T) {
	b := threeInARow(t)
	recorder := metrics.NewRecorder()

	NewMinimax(game.Positive, 4, recorder).FindMove(b)

	records := recorder.Records()
	require.Len(t, records, 1)
	require.Positive(t, records[0].Nodes)
	require.Zero(t, records[0].Simulations)
}
