package game

import "fmt"

// Tile is one of the two player colors or the empty cell. The signed
// encoding is shared by terminal results and heuristic scores: a positive
// score favors Positive, a negative score favors Negative.
type Tile int8

const (
	Negative Tile = -1
	Empty    Tile = 0
	Positive Tile = 1
)

// Enemy returns the opposing color, or Empty for Empty.
func (t Tile) Enemy() Tile {
	switch t {
	case Negative:
		return Positive
	case Positive:
		return Negative
	default:
		return Empty
	}
}

func (t Tile) String() string {
	switch t {
	case Negative:
		return "O"
	case Positive:
		return "X"
	case Empty:
		return "."
	default:
		panic(fmt.Sprintf("invalid tile value: %d", int8(t)))
	}
}
