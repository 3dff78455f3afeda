package game

// ValidPositions returns the gravity-resolved drop target for every column
// that is not full: the lowest empty row per column, in ascending column
// order. It never mutates the board.
func (b *Board) ValidPositions() []Position {
	res := make([]Position, 0, b.shape.Cols)

	for col := 0; col < b.shape.Cols; col++ {
		if top, _ := b.At(Position{Col: col, Row: 0}); top != Empty {
			continue // Column is full
		}

		row := b.shape.Rows - 1
		for r := 1; r < b.shape.Rows; r++ {
			if t, _ := b.At(Position{Col: col, Row: r}); t != Empty {
				row = r - 1
				break
			}
		}
		res = append(res, Position{Col: col, Row: row})
	}

	return res
}
