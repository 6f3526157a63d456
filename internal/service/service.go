package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"chessrules/internal/board"
	"chessrules/internal/core"
	"chessrules/internal/game"
)

var (
	ErrPositionNotFound = errors.New("position not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidFEN       = errors.New("invalid FEN")
)

// Service is an in-memory registry of positions. Positions are immutable
// once stored, so readers share them under the read lock.
type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
}

// New creates a new service instance
func New() *Service {
	return &Service{
		games: make(map[string]*game.Game),
	}
}

// CreatePosition stores the standard layout, or the given FEN, under a new ID
func (s *Service) CreatePosition(req core.CreatePositionRequest) (string, error) {
	if err := validateRequest(&req); err != nil {
		return "", err
	}

	g := game.New()
	if req.FEN != "" {
		var err error
		g, err = game.FromFEN(req.FEN)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.generateID()
	s.games[id] = g
	return id, nil
}

// generateID must be called with the write lock held
func (s *Service) generateID() string {
	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// GetPosition retrieves a position by ID
func (s *Service) GetPosition(id string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPositionNotFound, id)
	}
	return g, nil
}

// DeletePosition removes a position from memory
func (s *Service) DeletePosition(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrPositionNotFound, id)
	}
	delete(s.games, id)
	return nil
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// CanMove applies movement rules to the piece on From, ignoring the turn
func (s *Service) CanMove(id string, req core.MoveQuery) (bool, error) {
	if err := validateRequest(&req); err != nil {
		return false, err
	}
	g, err := s.GetPosition(id)
	if err != nil {
		return false, err
	}
	from, to := mustSquare(req.From), mustSquare(req.To)
	return g.CanMove(from, to)
}

// ValidateMove also checks that the piece belongs to the side to move
func (s *Service) ValidateMove(id string, req core.MoveQuery) (game.MoveResult, error) {
	if err := validateRequest(&req); err != nil {
		return game.MoveResult{}, err
	}
	g, err := s.GetPosition(id)
	if err != nil {
		return game.MoveResult{}, err
	}
	return g.ValidateMove(mustSquare(req.From), mustSquare(req.To)), nil
}

func (s *Service) Attacks(id string, req core.SquareQuery) ([]board.Square, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}
	g, err := s.GetPosition(id)
	if err != nil {
		return nil, err
	}
	return g.Attacks(mustSquare(req.Square))
}

func (s *Service) Destinations(id string, req core.SquareQuery) ([]board.Square, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}
	g, err := s.GetPosition(id)
	if err != nil {
		return nil, err
	}
	return g.Destinations(mustSquare(req.Square))
}

func (s *Service) Threats(id string, req core.ThreatQuery) ([]board.Square, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}
	color, err := core.ParseColor(req.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	g, err := s.GetPosition(id)
	if err != nil {
		return nil, err
	}
	return g.Threats(color), nil
}

// PositionResponse builds the display form of a stored position
func (s *Service) PositionResponse(id string) (core.PositionResponse, error) {
	g, err := s.GetPosition(id)
	if err != nil {
		return core.PositionResponse{}, err
	}
	return core.PositionResponse{
		PositionID: id,
		FEN:        g.FEN(),
		Turn:       g.Turn().String(),
	}, nil
}

// ErrorCode maps a service error to its stable code
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPositionNotFound):
		return core.ErrPositionNotFound
	case errors.Is(err, board.ErrInvalidSquare):
		return core.ErrInvalidSquare
	case errors.Is(err, ErrInvalidFEN):
		return core.ErrInvalidFEN
	case errors.Is(err, ErrInvalidRequest):
		return core.ErrInvalidRequest
	case errors.Is(err, game.ErrEmptySquare):
		return core.ErrEmptySquare
	case errors.Is(err, game.ErrWrongTurn):
		return core.ErrWrongTurn
	case errors.Is(err, game.ErrIllegalMove):
		return core.ErrIllegalMove
	default:
		return core.ErrInternalError
	}
}

// Close drops all stored positions
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)
	return nil
}

// mustSquare is only used on fields that passed the "square" validation
func mustSquare(s string) board.Square {
	sq, err := board.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
