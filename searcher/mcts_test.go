package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"connectn/experiments/metrics"
	"connectn/game"
)

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestUCT(t *testing.T) {
	require.Panics(t, func() { uct(0, 0, 1, DefaultExploration) },
		"UCT must refuse a zero visit count")

	// With no exploration term the score reduces to the win rate.
	require.InDelta(t, 0.5, uct(1, 2, 2, 0), 1e-9)

	// Less-visited children score a higher exploration bonus.
	low := uct(1, 2, 100, DefaultExploration)
	high := uct(5, 10, 100, DefaultExploration)
	require.Greater(t, low, high)
}

func TestMCTSVisitCountsSumToBudget(t *testing.T) {
	const simulations = 200

	m := NewMCTS(game.Positive,
		WithSimulations(simulations),
		WithRand(seededRand(1)),
	)

	b := game.NewBoard(6, 7)
	root := newNode(nil, b.Clone(), m.tile)
	for i := 0; i < simulations; i++ {
		leaf := m.traverse(root)
		result := m.playout(leaf)
		m.backpropagate(leaf, result)
	}

	require.Equal(t, simulations, root.visits)
	total := 0
	for _, child := range root.children {
		require.Positive(t, child.visits, "every expanded child has at least one visit")
		total += child.visits
	}
	require.Equal(t, simulations, total,
		"each simulation terminates in exactly one root child subtree")
}

func TestMCTSTakesWinningMove(t *testing.T) {
	b := game.NewBoard(6, 7)
	moves := []game.Move{
		{Pos: game.Position{Col: 0, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 5}, Tile: game.Negative},
		{Pos: game.Position{Col: 1, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 4}, Tile: game.Negative},
		{Pos: game.Position{Col: 2, Row: 5}, Tile: game.Positive},
		{Pos: game.Position{Col: 6, Row: 3}, Tile: game.Negative},
	}
	for _, mv := range moves {
		require.True(t, b.Place(mv))
	}

	m := NewMCTS(game.Positive,
		WithSimulations(2000),
		WithRand(seededRand(42)),
	)
	move := m.FindMove(b)

	require.Equal(t, game.Move{Pos: game.Position{Col: 3, Row: 5}, Tile: game.Positive}, move)
}

func TestMCTSPlayoutTerminalNode(t *testing.T) {
	b := game.NewBoard(6, 7)
	for col := 0; col < 4; col++ {
		require.True(t, b.Place(game.Move{Pos: game.Position{Col: col, Row: 5}, Tile: game.Negative}))
	}
	n := newNode(nil, b, game.Positive)

	m := NewMCTS(game.Positive, WithSimulations(1), WithRand(seededRand(7)))

	require.Equal(t, game.Negative, m.playout(n),
		"a terminal node's playout is its memoized result")
}

func TestMCTSBackpropagationReward(t *testing.T) {
	// Rewards are signed by the searching agent's tile at every level of
	// the path, not by the color to move at each node.
	root := newNode(nil, game.NewBoard(6, 7), game.Negative)
	child := root.expand()

	m := NewMCTS(game.Negative, WithSimulations(1), WithRand(seededRand(7)))
	m.backpropagate(child, game.Negative)

	require.Equal(t, 1, child.wins, "a Negative result rewards the Negative agent")
	require.Equal(t, 1, child.visits)
	require.Equal(t, 1, root.wins)
	require.Equal(t, 1, root.visits)

	m.backpropagate(child, game.Positive)
	require.Equal(t, 0, child.wins)
	require.Equal(t, 2, child.visits)
}

func TestMCTSDoesNotMutateBoard(t *testing.T) {
	b := game.NewBoard(6, 7)
	require.True(t, b.Place(game.Move{Pos: game.Position{Col: 3, Row: 5}, Tile: game.Positive}))
	before := b.Clone()

	m := NewMCTS(game.Negative, WithSimulations(100), WithRand(seededRand(3)))
	m.FindMove(b)

	require.Equal(t, before, b)
}

func TestMCTSCollectsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	m := NewMCTS(game.Positive,
		WithSimulations(50),
		WithRand(seededRand(9)),
		WithCollector(recorder),
	)

	m.FindMove(game.NewBoard(6, 7))

	records := recorder.Records()
	require.Len(t, records, 1)
	require.Equal(t, 50, records[0].Simulations)
	require.Zero(t, records[0].Nodes)
}

func TestNewMCTSRequiresBudget(t *testing.T) {
	require.Panics(t, func() { NewMCTS(game.Positive) })
}
