package game

import (
	"fmt"
	"strconv"

	"checkers/internal/domain/board"
)

type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

func (c Color) Opponent() Color {
	if c == Red {
		return Black
	}
	return Red
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "red":
		*c = Red
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

// PromotionRow reports whether sq is on the far row for c:
// 29..32 for red, 1..4 for black.
func (c Color) PromotionRow(sq board.Square) bool {
	if c == Red {
		return sq >= 29 && sq <= 32
	}
	return sq >= 1 && sq <= 4
}

// forward reports whether moving from -> to goes the way c advances.
func (c Color) forward(from, to board.Square) bool {
	if c == Red {
		return to > from
	}
	return to < from
}

type PieceID string

// NewPieceID names a piece after its starting square, e.g. "p21".
func NewPieceID(start board.Square) PieceID {
	return PieceID("p" + strconv.Itoa(int(start)))
}

type Piece struct {
	ID       PieceID      `json:"id"`
	Location board.Square `json:"location"`
	Color    Color        `json:"color"`
	King     bool         `json:"king"`
}

// CanSimpleMoveTo reports whether target is a diagonal neighbour in a
// direction this piece may travel. Occupancy is not checked.
func (p Piece) CanSimpleMoveTo(target board.Square) bool {
	if !board.IsNeighbor(p.Location, target) {
		return false
	}
	return p.King || p.Color.forward(p.Location, target)
}

// CaptureLandingFor returns the square jumped over when landing on target.
// Occupancy of either square is not checked.
func (p Piece) CaptureLandingFor(target board.Square) (board.Square, bool) {
	over, ok := board.JumpOver(p.Location, target)
	if !ok {
		return 0, false
	}
	if !p.King && !p.Color.forward(p.Location, target) {
		return 0, false
	}
	return over, true
}

// Outcome is the terminal state of a game, if any.
type Outcome int

const (
	InProgress Outcome = iota
	RedWins
	BlackWins
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red wins"
	case BlackWins:
		return "black wins"
	default:
		return "in progress"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "red wins":
		*o = RedWins
	case "black wins":
		*o = BlackWins
	case "in progress", "":
		*o = InProgress
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}

func (o Outcome) Over() bool {
	return o != InProgress
}

// WinFor returns the outcome in which c is the winner.
func WinFor(c Color) Outcome {
	if c == Red {
		return RedWins
	}
	return BlackWins
}
