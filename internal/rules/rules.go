// Package rules evaluates per-piece movement geometry on a board snapshot.
// Nothing here checks whose turn it is, whether a king is left in check,
// or whether the start square actually holds the given piece.
package rules

import (
	"fmt"

	"golang.org/x/exp/slices"

	"chessrules/internal/board"
	"chessrules/internal/core"
)

// CanMove reports whether p standing on start could reach end. The board is
// only read. A zero-length move and a landing on an own-color piece are
// never legal, and neither is any move by a piece without a valid color.
func CanMove(p board.Piece, start, end board.Square, b *board.Board) bool {
	if start == end || !validColor(p.Color) {
		return false
	}
	if target, ok := b.Occupant(end); ok && target.Color == p.Color {
		return false
	}

	switch p.Kind {
	case board.Pawn:
		return pawnCanMove(p.Color, start, end, b)
	case board.Rook:
		return rookCanMove(start, end, b)
	case board.Knight:
		return knightCanMove(start, end)
	case board.Bishop:
		return bishopCanMove(start, end, b)
	case board.Queen:
		return rookCanMove(start, end, b) || bishopCanMove(start, end, b)
	case board.King:
		return kingCanMove(start, end)
	case board.NoKind:
		return false
	default:
		panic(fmt.Sprintf("rules: unknown piece kind %d", p.Kind))
	}
}

// Attacks returns the squares p threatens from pos, sorted row-major.
// Pawns and sliding pieces report capturable enemy occupants only; knights
// and kings report every reachable square.
func Attacks(p board.Piece, pos board.Square, b *board.Board) []board.Square {
	if !validColor(p.Color) {
		return nil
	}

	var squares []board.Square

	switch p.Kind {
	case board.Pawn:
		squares = pawnAttacks(p.Color, pos, b)
	case board.Rook:
		squares = rookAttacks(p.Color, pos, b)
	case board.Knight:
		squares = knightAttacks(pos)
	case board.Bishop:
		squares = bishopAttacks(p.Color, pos, b)
	case board.Queen:
		squares = append(rookAttacks(p.Color, pos, b), bishopAttacks(p.Color, pos, b)...)
	case board.King:
		squares = kingAttacks(pos)
	case board.NoKind:
		return nil
	default:
		panic(fmt.Sprintf("rules: unknown piece kind %d", p.Kind))
	}

	return normalize(squares)
}

// Destinations lists every square CanMove accepts for p from start
func Destinations(p board.Piece, start board.Square, b *board.Board) []board.Square {
	var squares []board.Square
	for _, sq := range board.AllSquares() {
		if CanMove(p, start, sq, b) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Threats is the union of Attacks over every piece of one color
func Threats(color core.Color, b *board.Board) []board.Square {
	var squares []board.Square
	for _, sq := range b.Pieces(color) {
		p, _ := b.Occupant(sq)
		squares = append(squares, Attacks(p, sq, b)...)
	}
	return normalize(squares)
}

func validColor(c core.Color) bool {
	return c == core.ColorWhite || c == core.ColorBlack
}

func normalize(squares []board.Square) []board.Square {
	slices.SortFunc(squares, func(a, b board.Square) int {
		return a.Compare(b)
	})
	return slices.Compact(squares)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
