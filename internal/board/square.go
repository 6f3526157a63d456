package board

import (
	"errors"
	"fmt"

	"github.com/corentings/chess/v2"
)

const Size = 8

// ErrInvalidSquare reports a coordinate outside the 8x8 grid
var ErrInvalidSquare = errors.New("invalid square")

// Square is a validated (row, col) pair. Row 0 is rank 8, col 0 is file a.
// The zero value is a8.
type Square struct {
	row int8
	col int8
}

func NewSquare(row, col int) (Square, error) {
	if !inBounds(row, col) {
		return Square{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidSquare, row, col)
	}
	return Square{row: int8(row), col: int8(col)}, nil
}

// MustSquare panics on out-of-range input
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare reads algebraic notation such as "e2"
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file := int(s[0] - 'a')
	rank := int('8' - s[1])
	return Square{row: int8(rank), col: int8(file)}, nil
}

func (s Square) Row() int { return int(s.row) }
func (s Square) Col() int { return int(s.col) }

// Offset returns the square shifted by (dr, dc) and false if it leaves the board
func (s Square) Offset(dr, dc int) (Square, bool) {
	r, c := int(s.row)+dr, int(s.col)+dc
	if !inBounds(r, c) {
		return Square{}, false
	}
	return Square{row: int8(r), col: int8(c)}, true
}

// Index is the row-major position, 0 for a8 through 63 for h1
func (s Square) Index() int {
	return int(s.row)*Size + int(s.col)
}

// Compare orders squares row-major
func (s Square) Compare(o Square) int {
	return s.Index() - o.Index()
}

func (s Square) String() string {
	return chess.Square(int(s.col) + Size*(Size-1-int(s.row))).String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// AllSquares lists the 64 squares in row-major order
func AllSquares() []Square {
	squares := make([]Square, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			squares = append(squares, Square{row: int8(r), col: int8(c)})
		}
	}
	return squares
}
