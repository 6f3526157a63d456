package core

// Error codes
const (
	ErrPositionNotFound = "POSITION_NOT_FOUND"
	ErrInvalidSquare    = "INVALID_SQUARE"
	ErrInvalidRequest   = "INVALID_REQUEST"
	ErrInvalidFEN       = "INVALID_FEN"
	ErrEmptySquare      = "EMPTY_SQUARE"
	ErrWrongTurn        = "WRONG_TURN"
	ErrIllegalMove      = "ILLEGAL_MOVE"
	ErrInternalError    = "INTERNAL_ERROR"
)
