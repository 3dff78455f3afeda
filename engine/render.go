package engine

import (
	"fmt"
	"io"
	"strings"

	"connectn/game"
)

// Render writes the board as an ASCII grid: X for Positive, O for
// Negative, a dot for empty cells.
func Render(w io.Writer, b *game.Board) {
	shape := b.Shape()

	full := "+" + strings.Repeat("-", (shape.Cols+2)*3) + "+"
	inner := "+---" + strings.Repeat("-", (shape.Cols-1)*4) + "+"

	fmt.Fprintln(w, full)
	for row := 0; row < shape.Rows; row++ {
		fmt.Fprint(w, "| ")
		for col := 0; col < shape.Cols; col++ {
			tile, ok := b.At(game.Position{Col: col, Row: row})
			if !ok {
				panic("render position out of range")
			}
			fmt.Fprintf(w, "%s | ", tile)
		}
		fmt.Fprintln(w)

		if row != shape.Rows-1 {
			fmt.Fprintln(w, inner)
		} else {
			fmt.Fprintln(w, full)
		}
	}
}
