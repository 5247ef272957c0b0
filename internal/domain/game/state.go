package game

import (
	"time"

	"checkers/internal/domain/board"
)

type Turn struct {
	Active          Color          `json:"active"`
	InForcedCapture bool           `json:"in_forced_capture"`
	ForcedPiece     PieceID        `json:"forced_piece,omitempty"`
	Pending         []board.Square `json:"pending"`
	JustPromoted    bool           `json:"just_promoted"`
}

// Pens holds the pieces each side has captured.
type Pens struct {
	Red   []Piece `json:"red"`
	Black []Piece `json:"black"`
}

type State struct {
	Pieces  PieceSet `json:"pieces"`
	Turn    Turn     `json:"turn"`
	Outcome Outcome  `json:"outcome"`
	Pens    Pens     `json:"pens"`
}

func (s State) Clone() State {
	return State{
		Pieces: s.Pieces.Clone(),
		Turn: Turn{
			Active:          s.Turn.Active,
			InForcedCapture: s.Turn.InForcedCapture,
			ForcedPiece:     s.Turn.ForcedPiece,
			Pending:         append([]board.Square{}, s.Turn.Pending...),
			JustPromoted:    s.Turn.JustPromoted,
		},
		Outcome: s.Outcome,
		Pens: Pens{
			Red:   append([]Piece{}, s.Pens.Red...),
			Black: append([]Piece{}, s.Pens.Black...),
		},
	}
}

type Rules struct {
	MandatoryCapture bool `json:"mandatory_capture"`
}

// Game is a stored game session.
type Game struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Rules     Rules     `json:"rules"`
	State     State     `json:"state"`
}

type MoveRequest struct {
	PieceID PieceID      `json:"piece_id"`
	Target  board.Square `json:"target"`
}

type MoveResult struct {
	Accepted        bool    `json:"accepted"`
	CapturedPieceID PieceID `json:"captured_piece_id,omitempty"`
	Promoted        bool    `json:"promoted"`
	Outcome         Outcome `json:"outcome"`
}

type GameStateResponse struct {
	ID      string  `json:"id"`
	Status  string  `json:"status"`
	Pieces  []Piece `json:"pieces"`
	Turn    Turn    `json:"turn"`
	Outcome Outcome `json:"outcome"`
	Pens    Pens    `json:"pens"`
	Rules   Rules   `json:"rules"`
}

type MoveResponse struct {
	Result MoveResult        `json:"result"`
	Game   GameStateResponse `json:"game"`
	Error  string            `json:"error,omitempty"`
}

type DestinationsResponse struct {
	PieceID      PieceID        `json:"piece_id"`
	Destinations []board.Square `json:"destinations"`
}

type CreateGameRequest struct {
	MandatoryCapture *bool `json:"mandatory_capture,omitempty"`
}

type CreateGameResponse struct {
	ID string `json:"id"`
}
