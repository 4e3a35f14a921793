package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const puzzle30 = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func argsFrom(s string) []string {
	args := make([]string, 0, CellCount)
	for _, ch := range s {
		args = append(args, string(ch))
	}
	return args
}

func TestParse(t *testing.T) {
	is := is.New(t)
	b, err := Parse(argsFrom(puzzle30))
	is.NoErr(err)
	is.Equal(b.Get(0, 0), 5)
	is.Equal(b.Get(0, 4), 7)
	is.Equal(b.Get(8, 8), 9)
	is.Equal(b.Get(4, 3), 8)
	is.Equal(b.EmptyCount(), CellCount-30)
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)

	_, err := Parse(argsFrom(puzzle30)[:80])
	is.True(errors.Is(err, ErrInvalidInput))

	args := argsFrom(puzzle30)
	args[17] = "x"
	_, err = Parse(args)
	is.True(errors.Is(err, ErrInvalidInput))

	args = argsFrom(puzzle30)
	args[3] = "12"
	_, err = Parse(args)
	is.True(errors.Is(err, ErrInvalidInput))

	args = argsFrom(puzzle30)
	args[3] = "-1"
	_, err = Parse(args)
	is.True(errors.Is(err, ErrInvalidInput))
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	b, err := Parse(argsFrom(puzzle30))
	is.NoErr(err)
	is.NoErr(b.Validate())

	// Duplicate in row 0.
	dup := b.Copy()
	dup.Set(0, 8, 5)
	is.True(errors.Is(dup.Validate(), ErrInvalidInput))

	// Duplicate in column 0.
	dup = b.Copy()
	dup.Set(2, 0, 6)
	is.True(errors.Is(dup.Validate(), ErrInvalidInput))

	// Duplicate in the top-left block, different row and column.
	dup = b.Copy()
	dup.Set(2, 2, 5)
	is.True(errors.Is(dup.Validate(), ErrInvalidInput))
}

// Allowed must return false exactly when the digit already occurs in the
// target's row, column, or containing block. Compare against a literal
// three-loop reference over every cell and digit.
func TestAllowedMatchesReference(t *testing.T) {
	is := is.New(t)
	b, err := Parse(argsFrom(puzzle30))
	is.NoErr(err)

	occurs := func(val, row, col int) bool {
		for i := 0; i < Dim; i++ {
			if b.Get(row, i) == val || b.Get(i, col) == val {
				return true
			}
		}
		br, bc := row/3*3, col/3*3
		for r := br; r < br+3; r++ {
			for c := bc; c < bc+3; c++ {
				if b.Get(r, c) == val {
					return true
				}
			}
		}
		return false
	}

	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			for val := 1; val <= Dim; val++ {
				is.Equal(b.Allowed(val, row, col), !occurs(val, row, col))
			}
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	b, err := Parse(argsFrom(puzzle30))
	is.NoErr(err)
	c := b.Copy()
	is.True(b.Equals(c))
	c.Set(0, 2, 4)
	is.True(!b.Equals(c))
	is.Equal(b.Get(0, 2), 0)
}

func TestCellsRowMajor(t *testing.T) {
	is := is.New(t)
	b, err := Parse(argsFrom(puzzle30))
	is.NoErr(err)
	cells := b.Cells()
	for i, v := range cells {
		is.Equal(v, int(puzzle30[i]-'0'))
	}
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	b, err := Parse(argsFrom(puzzle30))
	is.NoErr(err)
	text := b.ToDisplayText()
	is.Equal(strings.Count(text, "\n"), 12) // 9 rows + 2 separators + leading newline
	is.True(strings.Contains(text, "5 3 . "))
}
