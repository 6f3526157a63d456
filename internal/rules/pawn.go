package rules

import (
	"chessrules/internal/board"
	"chessrules/internal/core"
)

// pawnDirection is the row step toward the opponent: white moves to row 0
func pawnDirection(color core.Color) int {
	if color == core.ColorWhite {
		return -1
	}
	return 1
}

func pawnStartRow(color core.Color) int {
	if color == core.ColorWhite {
		return 6
	}
	return 1
}

func pawnCanMove(color core.Color, start, end board.Square, b *board.Board) bool {
	dir := pawnDirection(color)
	dr := end.Row() - start.Row()
	dc := end.Col() - start.Col()

	switch {
	case dc == 0 && dr == dir:
		return b.IsEmpty(end)

	case dc == 0 && dr == 2*dir && start.Row() == pawnStartRow(color):
		mid, _ := start.Offset(dir, 0)
		return b.IsEmpty(mid) && b.IsEmpty(end)

	case abs(dc) == 1 && dr == dir:
		target, ok := b.Occupant(end)
		return ok && target.Color == core.OppositeColor(color)
	}

	return false
}

// pawnAttacks reports only the forward diagonals holding an enemy piece
func pawnAttacks(color core.Color, pos board.Square, b *board.Board) []board.Square {
	var attacks []board.Square
	dir := pawnDirection(color)
	for _, dc := range []int{-1, 1} {
		sq, ok := pos.Offset(dir, dc)
		if !ok {
			continue
		}
		if target, occupied := b.Occupant(sq); occupied && target.Color == core.OppositeColor(color) {
			attacks = append(attacks, sq)
		}
	}
	return attacks
}
