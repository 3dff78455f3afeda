package game

// Position addresses a board cell. Row 0 is the top row; pieces stack
// upwards towards it.
type Position struct {
	Col int
	Row int
}

// Move is a single piece drop: the target cell and the color being placed.
// Moves compare and hash by value, so they can key maps directly.
type Move struct {
	Pos  Position
	Tile Tile
}
