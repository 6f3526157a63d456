package core

// Request types

type CreatePositionRequest struct {
	FEN string `json:"fen,omitempty" validate:"omitempty,max=100"`
}

type MoveQuery struct {
	From string `json:"from" validate:"required,square"`
	To   string `json:"to" validate:"required,square"`
}

type SquareQuery struct {
	Square string `json:"square" validate:"required,square"`
}

type ThreatQuery struct {
	Color string `json:"color" validate:"required,oneof=w b white black"`
}

// Response types

type PositionResponse struct {
	PositionID string `json:"positionId"`
	FEN        string `json:"fen"`
	Turn       string `json:"turn"` // "w" or "b"
}
