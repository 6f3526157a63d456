package transport

import (
	"chessrules/internal/board"
	"chessrules/internal/game"
)

// View abstracts display/output operations
type View interface {
	DisplayBoard(b board.Board, highlight []board.Square)
	ShowSquares(label string, squares []board.Square)
	ShowVerdict(res game.MoveResult)
	ShowMessage(msg string)
	ShowError(err error)
	ShowHelp()
}
