package rules

import (
	"chessrules/internal/board"
	"chessrules/internal/core"
)

type direction struct {
	dr, dc int
}

var (
	orthogonals = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonals   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// scanRays walks each direction until the edge or the first occupant. An
// occupant of the other color is collected; empty squares are not.
func scanRays(color core.Color, pos board.Square, dirs []direction, b *board.Board) []board.Square {
	var hits []board.Square
	for _, d := range dirs {
		sq, ok := pos.Offset(d.dr, d.dc)
		for ok {
			if p, occupied := b.Occupant(sq); occupied {
				if p.Color == core.OppositeColor(color) {
					hits = append(hits, sq)
				}
				break
			}
			sq, ok = sq.Offset(d.dr, d.dc)
		}
	}
	return hits
}

// pathClear reports whether every square strictly between start and end is
// empty. start and end must share a line.
func pathClear(start, end board.Square, b *board.Board) bool {
	dr := sign(end.Row() - start.Row())
	dc := sign(end.Col() - start.Col())

	sq, ok := start.Offset(dr, dc)
	for ok && sq != end {
		if !b.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Offset(dr, dc)
	}
	return true
}

func rookCanMove(start, end board.Square, b *board.Board) bool {
	if start.Row() != end.Row() && start.Col() != end.Col() {
		return false
	}
	return pathClear(start, end, b)
}

func bishopCanMove(start, end board.Square, b *board.Board) bool {
	if abs(start.Row()-end.Row()) != abs(start.Col()-end.Col()) {
		return false
	}
	return pathClear(start, end, b)
}

func rookAttacks(color core.Color, pos board.Square, b *board.Board) []board.Square {
	return scanRays(color, pos, orthogonals, b)
}

func bishopAttacks(color core.Color, pos board.Square, b *board.Board) []board.Square {
	return scanRays(color, pos, diagonals, b)
}
