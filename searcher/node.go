package searcher

import "connectn/game"

// node is one position in the Monte Carlo search tree. Each node owns a
// private snapshot of the board and the color to move there. moves holds
// every legal move from this position in column order; children[i] is the
// child reached by moves[i], appended as the node expands, so iteration
// order is deterministic and ties always resolve to the earliest column.
//
// The parent link is a non-owning back-reference used only for
// backpropagation. Children are owned; the whole tree is released
// together once the root is discarded after a move decision.
type node struct {
	board    *game.Board
	turn     game.Tile
	parent   *node
	moves    []game.Move
	children []*node

	visits int
	wins   int

	// Terminal status is memoized from a single evaluation at creation.
	terminal bool
	result   game.Tile
}

// newNode takes ownership of board, which must already reflect the move
// that led to this position.
func newNode(parent *node, board *game.Board, turn game.Tile) *node {
	positions := board.ValidPositions()
	moves := make([]game.Move, len(positions))
	for i, p := range positions {
		moves[i] = game.Move{Pos: p, Tile: turn}
	}

	result, terminal, _ := game.Evaluate(board)

	return &node{
		board:    board,
		turn:     turn,
		parent:   parent,
		moves:    moves,
		terminal: terminal,
		result:   result,
	}
}

// fullyExpanded reports whether every legal move already has a child.
func (n *node) fullyExpanded() bool {
	return len(n.children) == len(n.moves)
}

// expand materializes exactly one child, for the first legal move without
// one, cloning this node's board and applying the move to the clone.
func (n *node) expand() *node {
	move := n.moves[len(n.children)]

	board := n.board.Clone()
	if !board.Place(move) {
		panic("expansion move rejected by the board")
	}

	child := newNode(n, board, n.turn.Enemy())
	n.children = append(n.children, child)
	return child
}
