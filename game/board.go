package game

// Shape is the fixed board size, set at construction.
type Shape struct {
	Rows int
	Cols int
}

// Cells returns the number of cells on a board of this shape.
func (s Shape) Cells() int { return s.Rows * s.Cols }

// DefaultConnectLength is the classic connect-four winning run.
const DefaultConnectLength = 4

// bitset is a fixed-width bit vector backing one color's pieces.
type bitset []uint64

func newBitset(bits int) bitset { return make(bitset, (bits+63)/64) }

func (s bitset) test(i int) bool { return s[i/64]&(1<<(i%64)) != 0 }

func (s bitset) set(i int) { s[i/64] |= 1 << (i % 64) }

func (s bitset) clear(i int) { s[i/64] &^= 1 << (i % 64) }

func (s bitset) clone() bitset {
	c := make(bitset, len(s))
	copy(c, s)
	return c
}

// Board is a two-color bitboard. Each color owns a disjoint bit-set indexed
// by row*cols+col. A cell may hold a piece only if every cell below it in
// the same column is occupied (gravity); Place enforces this, Remove does
// not, since removal only ever undoes the most recent placement during
// search backtracking.
type Board struct {
	shape    Shape
	connect  int
	positive bitset
	negative bitset
}

// NewBoard creates an empty rows x cols board with the default connection
// length of 4.
func NewBoard(rows, cols int) *Board {
	return NewBoardN(rows, cols, DefaultConnectLength)
}

// NewBoardN creates an empty rows x cols board that is won by connecting
// n tiles in a line.
func NewBoardN(rows, cols, n int) *Board {
	shape := Shape{Rows: rows, Cols: cols}
	return &Board{
		shape:    shape,
		connect:  n,
		positive: newBitset(shape.Cells()),
		negative: newBitset(shape.Cells()),
	}
}

// Shape returns the fixed board dimensions.
func (b *Board) Shape() Shape { return b.shape }

// ConnectLength returns the winning run length N.
func (b *Board) ConnectLength() int { return b.connect }

func (b *Board) inRange(p Position) bool {
	return p.Col >= 0 && p.Col < b.shape.Cols && p.Row >= 0 && p.Row < b.shape.Rows
}

func (b *Board) index(p Position) int { return p.Row*b.shape.Cols + p.Col }

// At returns the tile at p, or ok=false when p lies outside the grid.
func (b *Board) At(p Position) (Tile, bool) {
	if !b.inRange(p) {
		return Empty, false
	}
	i := b.index(p)
	switch {
	case b.positive.test(i):
		return Positive, true
	case b.negative.test(i):
		return Negative, true
	default:
		return Empty, true
	}
}

// Place drops a tile at m.Pos. It succeeds only if the position is within
// range, the tile is a player color, and the cell below is occupied or the
// position is on the bottom row. On failure the board is unchanged.
func (b *Board) Place(m Move) bool {
	if !b.inRange(m.Pos) {
		return false
	}

	if m.Pos.Row+1 != b.shape.Rows {
		below, _ := b.At(Position{Col: m.Pos.Col, Row: m.Pos.Row + 1})
		if below == Empty {
			return false
		}
	}

	i := b.index(m.Pos)
	switch m.Tile {
	case Positive:
		b.positive.set(i)
	case Negative:
		b.negative.set(i)
	default:
		return false
	}
	return true
}

// Remove clears the bit for m.Tile at m.Pos. Beyond the range check there
// is no validation: Remove exists to undo a placement during search.
func (b *Board) Remove(m Move) bool {
	if !b.inRange(m.Pos) {
		return false
	}

	i := b.index(m.Pos)
	switch m.Tile {
	case Positive:
		b.positive.clear(i)
	case Negative:
		b.negative.clear(i)
	default:
		return false
	}
	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		shape:    b.shape,
		connect:  b.connect,
		positive: b.positive.clone(),
		negative: b.negative.clone(),
	}
}
