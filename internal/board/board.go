package board

import (
	"fmt"
	"strings"

	"chessrules/internal/core"
)

const (
	StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
)

var backRank = [Size]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of optional pieces. It is a value type: copies are
// independent snapshots.
type Board struct {
	squares [Size][Size]Piece
}

// Empty returns a board with no pieces
func Empty() Board {
	return Board{}
}

// Initial returns the standard starting layout, black on rows 0-1
func Initial() Board {
	var b Board
	for c, kind := range backRank {
		b.squares[0][c] = Piece{Color: core.ColorBlack, Kind: kind}
		b.squares[7][c] = Piece{Color: core.ColorWhite, Kind: kind}
		b.squares[1][c] = Piece{Color: core.ColorBlack, Kind: Pawn}
		b.squares[6][c] = Piece{Color: core.ColorWhite, Kind: Pawn}
	}
	return b
}

func (b *Board) Occupant(sq Square) (Piece, bool) {
	p := b.squares[sq.row][sq.col]
	return p, !p.IsEmpty()
}

func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq.row][sq.col].IsEmpty()
}

// With returns a copy of the board with p placed on sq
func (b Board) With(sq Square, p Piece) Board {
	b.squares[sq.row][sq.col] = p
	return b
}

// Without returns a copy of the board with sq cleared
func (b Board) Without(sq Square) Board {
	b.squares[sq.row][sq.col] = Piece{}
	return b
}

// Pieces lists the occupied squares of one color in row-major order
func (b *Board) Pieces(color core.Color) []Square {
	var squares []Square
	for _, sq := range AllSquares() {
		if p, ok := b.Occupant(sq); ok && p.Color == color {
			squares = append(squares, sq)
		}
	}
	return squares
}

// ParsePlacement reads the piece placement field of a FEN string
func ParsePlacement(field string) (Board, error) {
	var b Board

	ranks := strings.Split(field, "/")
	if len(ranks) != Size {
		return Board{}, fmt.Errorf("invalid FEN: expected 8 ranks, got %d", len(ranks))
	}

	for r := 0; r < Size; r++ {
		file := 0
		for _, ch := range ranks[r] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= Size {
				return Board{}, fmt.Errorf("invalid FEN: too many pieces in rank %d", Size-r)
			}
			p, err := PieceFromSymbol(ch)
			if err != nil {
				return Board{}, fmt.Errorf("invalid FEN: %w", err)
			}
			b.squares[r][file] = p
			file++
		}
		if file != Size {
			return Board{}, fmt.Errorf("invalid FEN: rank %d has %d files", Size-r, file)
		}
	}

	return b, nil
}

// Placement renders the FEN piece placement field
func (b *Board) Placement() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		empty := 0
		for c := 0; c < Size; c++ {
			p := b.squares[r][c]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < Size-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", Size-r))
		for c := 0; c < Size; c++ {
			sb.WriteString(fmt.Sprintf("%c ", b.squares[r][c].Symbol()))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", Size-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
