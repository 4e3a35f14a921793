package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Dim is the side length of the grid.
	Dim = 9
	// CellCount is the total number of cells.
	CellCount = Dim * Dim
	// blockDim is the side length of one 3x3 block.
	blockDim = 3
)

var ErrInvalidInput = errors.New("invalid puzzle input")

// Board is a 9x9 Sudoku grid. Zero means an empty cell. A Board is always
// exclusively owned by a single goroutine; use Copy before handing it to
// another one.
type Board struct {
	cells [Dim][Dim]int
}

// Parse builds a board from 81 row-major integer tokens.
func Parse(args []string) (*Board, error) {
	if len(args) != CellCount {
		return nil, fmt.Errorf("%w: expected %d cell values, got %d",
			ErrInvalidInput, CellCount, len(args))
	}
	b := &Board{}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d: %q is not an integer",
				ErrInvalidInput, i, arg)
		}
		if v < 0 || v > Dim {
			return nil, fmt.Errorf("%w: cell %d: value %d out of range",
				ErrInvalidInput, i, v)
		}
		b.cells[i/Dim][i%Dim] = v
	}
	return b, nil
}

// Copy returns an independent deep copy.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) Get(row, col int) int {
	return b.cells[row][col]
}

func (b *Board) Set(row, col, val int) {
	b.cells[row][col] = val
}

// EmptyCount returns the number of unfilled cells.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.cells[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// Equals reports whether two boards hold the same 81 values.
func (b *Board) Equals(o *Board) bool {
	return b.cells == o.cells
}

// Cells returns the grid values in row-major order.
func (b *Board) Cells() [CellCount]int {
	var out [CellCount]int
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out[r*Dim+c] = b.cells[r][c]
		}
	}
	return out
}

func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for r := 0; r < Dim; r++ {
		if r > 0 && r%blockDim == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Dim; c++ {
			if c > 0 && c%blockDim == 0 {
				sb.WriteString("| ")
			}
			if b.cells[r][c] == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(strconv.Itoa(b.cells[r][c]) + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
