package board

import "fmt"

// Allowed reports whether val can be placed at (row, col) without clashing
// with the same row, column, or containing 3x3 block. One pass over 9
// positions; index i walks the row, the column, and the block at once.
func (b *Board) Allowed(val, row, col int) bool {
	for i := 0; i < Dim; i++ {
		if b.cells[i][col] == val {
			return false
		}
		if b.cells[row][i] == val {
			return false
		}
		if b.cells[row/blockDim*blockDim+i%blockDim][col/blockDim*blockDim+i/blockDim] == val {
			return false
		}
	}
	return true
}

// Validate checks the givens for pairwise conflicts. It does not prove
// solvability, only that no row, column, or block repeats a digit.
func (b *Board) Validate() error {
	var rowMask, colMask, blockMask [Dim]uint
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			v := b.cells[r][c]
			if v == 0 {
				continue
			}
			blk := r / blockDim * blockDim
			blk += c / blockDim
			m := uint(1) << (v - 1)
			if rowMask[r]&m != 0 {
				return fmt.Errorf("%w: digit %d repeated in row %d", ErrInvalidInput, v, r)
			}
			if colMask[c]&m != 0 {
				return fmt.Errorf("%w: digit %d repeated in column %d", ErrInvalidInput, v, c)
			}
			if blockMask[blk]&m != 0 {
				return fmt.Errorf("%w: digit %d repeated in block %d", ErrInvalidInput, v, blk)
			}
			rowMask[r] |= m
			colMask[c] |= m
			blockMask[blk] |= m
		}
	}
	return nil
}
