package rules

import "chessrules/internal/board"

var (
	knightOffsets = []direction{{-2, -1}, {-1, -2}, {1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}}
	kingOffsets   = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

func knightCanMove(start, end board.Square) bool {
	dr, dc := abs(start.Row()-end.Row()), abs(start.Col()-end.Col())
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

func kingCanMove(start, end board.Square) bool {
	return abs(start.Row()-end.Row()) <= 1 && abs(start.Col()-end.Col()) <= 1
}

func knightAttacks(pos board.Square) []board.Square {
	return stepTargets(pos, knightOffsets)
}

func kingAttacks(pos board.Square) []board.Square {
	return stepTargets(pos, kingOffsets)
}

// stepTargets applies each offset once, dropping those that leave the board
func stepTargets(pos board.Square, offsets []direction) []board.Square {
	targets := make([]board.Square, 0, len(offsets))
	for _, d := range offsets {
		if sq, ok := pos.Offset(d.dr, d.dc); ok {
			targets = append(targets, sq)
		}
	}
	return targets
}
