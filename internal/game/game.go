package game

import (
	"errors"
	"fmt"
	"strings"

	"chessrules/internal/board"
	"chessrules/internal/core"
	"chessrules/internal/rules"
)

const (
	StartingFEN = board.StartingPlacement + " w - - 0 1"
)

var (
	ErrEmptySquare = errors.New("no piece on start square")
	ErrWrongTurn   = errors.New("piece does not belong to side to move")
	ErrIllegalMove = errors.New("move violates piece movement rules")
)

type Verdict int

const (
	Accepted Verdict = iota + 1
	Rejected
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of checking a move against the current position.
// Reason is nil when the move is accepted.
type MoveResult struct {
	Start   board.Square
	End     board.Square
	Piece   board.Piece
	Verdict Verdict
	Reason  error
}

func (r MoveResult) Move() string {
	return r.Start.String() + r.End.String()
}

// Game holds a board and the side to move. It is never mutated after
// construction; the turn is stored but not advanced.
type Game struct {
	board board.Board
	turn  core.Color
}

// New creates a game with the standard starting layout, white to move
func New() *Game {
	return &Game{
		board: board.Initial(),
		turn:  core.ColorWhite,
	}
}

// FromFEN reads piece placement and side to move. Castling, en passant and
// clock fields are accepted but not interpreted.
func FromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 || len(parts) > 6 {
		return nil, fmt.Errorf("invalid FEN: expected 2 to 6 parts, got %d", len(parts))
	}

	b, err := board.ParsePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	var turn core.Color
	switch parts[1] {
	case "w":
		turn = core.ColorWhite
	case "b":
		turn = core.ColorBlack
	default:
		return nil, fmt.Errorf("invalid FEN: turn must be 'w' or 'b'")
	}

	return &Game{board: b, turn: turn}, nil
}

// Board returns a snapshot copy
func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) Turn() core.Color {
	return g.turn
}

func (g *Game) FEN() string {
	return fmt.Sprintf("%s %s - - 0 1", g.board.Placement(), g.turn)
}

// ValidateMove checks turn ownership and piece geometry for start->end. It
// is the precondition step for move execution, which this package does not
// perform.
func (g *Game) ValidateMove(start, end board.Square) MoveResult {
	result := MoveResult{Start: start, End: end, Verdict: Rejected}

	p, ok := g.board.Occupant(start)
	if !ok {
		result.Reason = fmt.Errorf("%w: %s", ErrEmptySquare, start)
		return result
	}
	result.Piece = p

	if p.Color != g.turn {
		result.Reason = fmt.Errorf("%w: %s on %s, %s to move", ErrWrongTurn, p, start, g.turn.Name())
		return result
	}

	if !rules.CanMove(p, start, end, &g.board) {
		result.Reason = fmt.Errorf("%w: %s cannot go %s-%s", ErrIllegalMove, p, start, end)
		return result
	}

	result.Verdict = Accepted
	return result
}

// Attacks returns the attack set of whatever stands on sq
func (g *Game) Attacks(sq board.Square) ([]board.Square, error) {
	p, ok := g.board.Occupant(sq)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmptySquare, sq)
	}
	return rules.Attacks(p, sq, &g.board), nil
}

// Destinations returns every square the piece on sq could move to
func (g *Game) Destinations(sq board.Square) ([]board.Square, error) {
	p, ok := g.board.Occupant(sq)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmptySquare, sq)
	}
	return rules.Destinations(p, sq, &g.board), nil
}

// CanMove applies the movement rules to the piece on start, ignoring the turn
func (g *Game) CanMove(start, end board.Square) (bool, error) {
	p, ok := g.board.Occupant(start)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrEmptySquare, start)
	}
	return rules.CanMove(p, start, end, &g.board), nil
}

func (g *Game) Threats(color core.Color) []board.Square {
	return rules.Threats(color, &g.board)
}
