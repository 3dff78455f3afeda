package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"connectn/experiments/metrics"
	"connectn/game"
)

// Option configures an MCTS searcher.
type Option func(*MCTS)

// WithSimulations sets the simulation budget per move.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

// WithExploration sets the UCT exploration constant C.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.c = c
		}
	}
}

// WithRand sets the random source used by playouts, keeping simulations
// reproducible under a fixed seed.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithCollector attaches a metrics collector to the searcher.
func WithCollector(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// MCTS is a Monte Carlo Tree Search searcher with UCT selection. The tree
// is built from scratch for every move and discarded once the move is
// chosen.
type MCTS struct {
	simulations int
	c           float64
	tile        game.Tile
	rng         *rand.Rand
	metrics     metrics.Collector
}

func NewMCTS(tile game.Tile, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		tile:    tile,
		c:       DefaultExploration,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.simulations <= 0 {
		panic("must specify a simulation budget")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindMove runs the configured simulation budget from the given position
// and returns the root child with the most visits.
func (m *MCTS) FindMove(b *game.Board) game.Move {
	m.metrics.Start()

	root := newNode(nil, b.Clone(), m.tile)
	for i := 0; i < m.simulations; i++ {
		leaf := m.traverse(root)
		result := m.playout(leaf)
		m.backpropagate(leaf, result)
		m.metrics.AddSimulation()
	}

	move := bestMove(root)
	m.metrics.Complete()
	return move
}

// traverse descends from root along max-UCT children until it reaches a
// node that is not fully expanded (which it expands, returning the new
// child) or a terminal node.
func (m *MCTS) traverse(root *node) *node {
	n := root
	for !n.terminal {
		if !n.fullyExpanded() {
			return n.expand()
		}
		n = m.selectChild(n)
	}
	return n
}

func (m *MCTS) selectChild(n *node) *node {
	var best *node
	bestScore := 0.0
	for _, child := range n.children {
		score := uct(child.wins, child.visits, n.visits, m.c)
		if best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// playout plays uniformly random legal moves on a throwaway copy of the
// node's board until the game ends, and returns the terminal result.
func (m *MCTS) playout(n *node) game.Tile {
	if n.terminal {
		return n.result
	}

	board := n.board.Clone()
	turn := n.turn
	for {
		result, terminal, _ := game.Evaluate(board)
		if terminal {
			m.metrics.AddFullPlayout()
			return result
		}

		positions := board.ValidPositions()
		move := game.Move{Pos: positions[m.rng.Intn(len(positions))], Tile: turn}
		if !board.Place(move) {
			panic("playout move rejected by the board")
		}
		turn = turn.Enemy()
	}
}

// backpropagate walks from the playout node up to the root inclusive,
// counting the visit and adding the playout result signed by the
// searching agent's tile. The accumulated wins of every node are thus
// from this agent's perspective regardless of which color moves there;
// the exploration constant is tuned against this convention.
func (m *MCTS) backpropagate(n *node, result game.Tile) {
	reward := int(result) * int(m.tile)
	for cur := n; cur != nil; cur = cur.parent {
		cur.wins += reward
		cur.visits++
	}
}

// bestMove picks the root child with the highest visit count, first-found
// on ties.
func bestMove(root *node) game.Move {
	if len(root.children) == 0 {
		panic("search root has no expanded children")
	}

	var res game.Move
	maxVisits := 0
	for i, child := range root.children {
		if child.visits > maxVisits {
			maxVisits = child.visits
			res = root.moves[i]
		}
	}
	return res
}
