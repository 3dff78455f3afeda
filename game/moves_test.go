package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidPositionsEmptyBoard(t *testing.T) {
	b := NewBoard(6, 7)

	got := b.ValidPositions()

	require.Len(t, got, 7)
	for col, p := range got {
		require.Equal(t, Position{Col: col, Row: 5}, p, "empty column should drop to the bottom row")
	}
}

func TestValidPositionsPartialColumn(t *testing.T) {
	b := NewBoard(6, 7)
	require.True(t, b.Place(Move{Pos: Position{Col: 3, Row: 5}, Tile: Positive}))
	require.True(t, b.Place(Move{Pos: Position{Col: 3, Row: 4}, Tile: Negative}))

	got := b.ValidPositions()

	require.Len(t, got, 7)
	require.Equal(t, Position{Col: 3, Row: 3}, got[3], "drop target should be the lowest empty row")
}

func TestValidPositionsSkipsFullColumn(t *testing.T) {
	b := NewBoard(6, 7)
	tile := Positive
	for row := 5; row >= 0; row-- {
		require.True(t, b.Place(Move{Pos: Position{Col: 0, Row: row}, Tile: tile}))
		tile = tile.Enemy()
	}

	got := b.ValidPositions()

	require.Len(t, got, 6)
	for _, p := range got {
		require.NotEqual(t, 0, p.Col, "full column must not be offered")
	}
	require.Equal(t, Position{Col: 1, Row: 5}, got[0], "columns should come in ascending order")
}

func TestValidPositionsDoesNotMutate(t *testing.T) {
	b := NewBoard(6, 7)
	require.True(t, b.Place(Move{Pos: Position{Col: 2, Row: 5}, Tile: Negative}))
	before := b.Clone()

	b.ValidPositions()

	require.Equal(t, before, b)
}
