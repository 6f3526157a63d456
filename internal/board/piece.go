package board

import (
	"fmt"
	"unicode"

	"chessrules/internal/core"
)

type PieceKind byte

const (
	NoKind PieceKind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

var kindSymbols = map[PieceKind]byte{
	Pawn:   'P',
	Rook:   'R',
	Knight: 'N',
	Bishop: 'B',
	Queen:  'Q',
	King:   'K',
}

// Symbol returns the upper-case display letter, '.' for NoKind
func (k PieceKind) Symbol() byte {
	if sym, ok := kindSymbols[k]; ok {
		return sym
	}
	return '.'
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is an immutable (color, kind) pair. The zero value is an empty cell.
// Build pieces with NewPiece or PieceFromSymbol; rules treat a piece whose
// color is neither white nor black as unable to move or attack.
type Piece struct {
	Color core.Color
	Kind  PieceKind
}

func NewPiece(color core.Color, kind PieceKind) Piece {
	return Piece{Color: color, Kind: kind}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Symbol follows FEN case: upper for white, lower for black
func (p Piece) Symbol() byte {
	sym := p.Kind.Symbol()
	if p.Color == core.ColorBlack && sym != '.' {
		return byte(unicode.ToLower(rune(sym)))
	}
	return sym
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.Name() + " " + p.Kind.String()
}

// PieceFromSymbol is the inverse of Piece.Symbol
func PieceFromSymbol(ch rune) (Piece, error) {
	if ch > unicode.MaxASCII {
		return Piece{}, fmt.Errorf("unknown piece symbol %q", ch)
	}
	color := core.ColorWhite
	if unicode.IsLower(ch) {
		color = core.ColorBlack
	}
	upper := byte(unicode.ToUpper(ch))
	for kind, sym := range kindSymbols {
		if sym == upper {
			return Piece{Color: color, Kind: kind}, nil
		}
	}
	return Piece{}, fmt.Errorf("unknown piece symbol %q", ch)
}
