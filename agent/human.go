package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectn/game"
)

// Human is an interactive agent that reads a target column from a text
// input stream and resolves it to the lowest open row. This is the only
// place an agent touches an I/O channel.
type Human struct {
	name string
	tile game.Tile
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(name string, tile game.Tile, in io.Reader, out io.Writer) *Human {
	return &Human{
		name: name,
		tile: tile,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (h *Human) Name() string    { return h.name }
func (h *Human) Tile() game.Tile { return h.tile }

func (h *Human) NextMove(board *game.Board) game.Move {
	fmt.Fprintf(h.out, "What will be your move %s?\n", h.name)
	col := h.readColumn()

	shape := board.Shape()
	row := shape.Rows - 1
	for r := 0; r < shape.Rows; r++ {
		if t, ok := board.At(game.Position{Col: col, Row: r}); ok && t != game.Empty {
			row = r - 1
			break
		}
	}

	return game.Move{Pos: game.Position{Col: col, Row: row}, Tile: h.tile}
}

// readColumn scans input lines until one parses as an integer. On
// exhausted input it returns -1, an out-of-range column, so the driver
// falls through to its end-of-turn re-evaluation.
func (h *Human) readColumn() int {
	for h.in.Scan() {
		col, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil {
			fmt.Fprintf(h.out, "Enter a column number %s.\n", h.name)
			continue
		}
		return col
	}
	return -1
}
