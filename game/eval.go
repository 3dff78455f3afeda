package game

import "math"

// The four direction axes scanned for connected runs: horizontal, vertical
// and the two diagonals. Each axis is checked forwards and backwards from
// the cell under inspection.
var axes = [4]Position{
	{Col: 1, Row: 0},
	{Col: 0, Row: 1},
	{Col: 1, Row: -1},
	{Col: 1, Row: 1},
}

// Evaluate scans the whole board and reports whether the position is
// terminal (result is the winning tile's signed value, or Empty for a
// draw) together with a heuristic score. Each occupied cell contributes
// 10^runLength per axis, signed by its color, so longer partial
// connections dominate the score. A winning run saturates the score to the
// extreme of the winner's sign so search treats it as unambiguous.
//
// In-progress lines are counted once per cell on the line, so the score is
// deliberately not a tight heuristic. Both search strategies depend on
// this shape of the function; keep it in sync with EvaluateMove.
func Evaluate(b *Board) (Tile, bool, int64) {
	n := b.ConnectLength()
	shape := b.Shape()

	var score int64
	for row := 0; row < shape.Rows; row++ {
		for col := 0; col < shape.Cols; col++ {
			p := Position{Col: col, Row: row}
			t, ok := b.At(p)
			if !ok || t == Empty {
				continue
			}

			for _, d := range axes {
				count := 1 + runLength(b, p, d, t)
				if count >= n {
					return t, true, winScore(t)
				}
				count += runLength(b, p, Position{Col: -d.Col, Row: -d.Row}, t)
				if count >= n {
					return t, true, winScore(t)
				}
				score += pow10(count) * int64(t)
			}
		}
	}

	if b.topRowFull() {
		return Empty, true, 0
	}
	return Empty, false, score
}

// EvaluateMove is the incremental form of Evaluate: it restricts the run
// scan to the four axes through last, the most recently placed position.
// The terminal and score semantics match Evaluate for those lines. When
// last is out of range or empty there is nothing to score.
func EvaluateMove(b *Board, last Position) (Tile, bool, int64) {
	t, ok := b.At(last)
	if !ok || t == Empty {
		return Empty, false, 0
	}

	n := b.ConnectLength()
	var score int64
	for _, d := range axes {
		count := 1 + runLength(b, last, d, t)
		if count >= n {
			return t, true, winScore(t)
		}
		count += runLength(b, last, Position{Col: -d.Col, Row: -d.Row}, t)
		if count >= n {
			return t, true, winScore(t)
		}
		score += pow10(count) * int64(t)
	}

	if b.topRowFull() {
		return Empty, true, 0
	}
	return Empty, false, score
}

// runLength counts contiguous tiles of the given color along d, starting
// one step away from p. The scan stops after connectLength-1 steps since
// longer runs cannot change the outcome.
func runLength(b *Board, p Position, d Position, tile Tile) int {
	count := 0
	for i := 1; i < b.ConnectLength(); i++ {
		cur := Position{Col: p.Col + d.Col*i, Row: p.Row + d.Row*i}
		t, ok := b.At(cur)
		if !ok || t != tile {
			break
		}
		count++
	}
	return count
}

func (b *Board) topRowFull() bool {
	for col := 0; col < b.shape.Cols; col++ {
		if t, _ := b.At(Position{Col: col, Row: 0}); t == Empty {
			return false
		}
	}
	return true
}

func winScore(t Tile) int64 {
	if t == Positive {
		return math.MaxInt64
	}
	return math.MinInt64
}

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
