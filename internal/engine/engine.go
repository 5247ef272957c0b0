package engine

import (
	"fmt"
	"strings"

	"checkers/internal/domain/board"
	"checkers/internal/domain/game"
	"checkers/internal/errors"
)

// Engine owns the piece set and the turn record of one game. It is not safe
// for concurrent use; callers serialize access.
type Engine struct {
	rules game.Rules
	state game.State
}

// New sets up the starting position with black to move.
func New(rules game.Rules) *Engine {
	e := &Engine{rules: rules}
	e.Reset()
	return e
}

// Restore continues a game from a snapshot taken with Snapshot.
func Restore(rules game.Rules, state game.State) *Engine {
	return &Engine{rules: rules, state: state.Clone()}
}

func (e *Engine) Reset() {
	e.state = game.State{
		Pieces: game.StartingPieces(),
		Turn:   game.Turn{Active: game.Black, Pending: []board.Square{}},
	}
	e.state.Outcome = Evaluate(e.state.Pieces, e.state.Turn.Active)
}

// Snapshot returns a deep copy of the committed state.
func (e *Engine) Snapshot() game.State {
	return e.state.Clone()
}

func (e *Engine) Turn() game.Turn {
	return e.state.Clone().Turn
}

func (e *Engine) Outcome() game.Outcome {
	return e.state.Outcome
}

// Status is the one-line banner shown above the board.
func (e *Engine) Status() string {
	switch e.state.Outcome {
	case game.RedWins:
		return "Red Wins!"
	case game.BlackWins:
		return "Black Wins!"
	}
	name := e.state.Turn.Active.String()
	return strings.ToUpper(name[:1]) + name[1:] + "'s Turn"
}

// LegalDestinations lists the squares the piece may be dropped on right now.
// Pieces of the side not to move, and every piece once the game is over,
// have none.
func (e *Engine) LegalDestinations(id game.PieceID) ([]board.Square, error) {
	p, ok := e.state.Pieces.Get(id)
	if !ok {
		return nil, fmt.Errorf("piece %q: %w", id, errors.ErrUnknownPiece)
	}
	if e.state.Outcome.Over() || p.Color != e.state.Turn.Active {
		return []board.Square{}, nil
	}
	turn := e.state.Turn
	if turn.ForcedPiece != "" && turn.ForcedPiece != id {
		return []board.Square{}, nil
	}

	captures := LegalCaptures(*p, e.state.Pieces)
	candidates := captures
	if !(e.rules.MandatoryCapture && len(turn.Pending) > 0) {
		candidates = append(LegalSimpleMoves(*p, e.state.Pieces), captures...)
	}
	out := make([]board.Square, 0, len(candidates))
	for _, sq := range candidates {
		if len(turn.Pending) > 0 && !contains(turn.Pending, sq) {
			continue
		}
		out = append(out, sq)
	}
	return uniqueSorted(out), nil
}

// AttemptMove validates and applies one move or capture. A rejected move
// returns Accepted=false with the reason and leaves the game untouched.
func (e *Engine) AttemptMove(id game.PieceID, target board.Square) (game.MoveResult, error) {
	rejected := game.MoveResult{Outcome: e.state.Outcome}
	if e.state.Outcome.Over() {
		return rejected, errors.ErrGameOver
	}
	if err := board.Validate(target); err != nil {
		return rejected, err
	}
	p, ok := e.state.Pieces.Get(id)
	if !ok {
		return rejected, fmt.Errorf("piece %q: %w", id, errors.ErrUnknownPiece)
	}

	turn := &e.state.Turn
	if p.Color != turn.Active {
		return rejected, fmt.Errorf("%s piece %q on %s's turn: %w", p.Color, id, turn.Active, errors.ErrNotYourTurn)
	}
	if len(turn.Pending) > 0 {
		if turn.ForcedPiece != "" && turn.ForcedPiece != id {
			return rejected, fmt.Errorf("piece %q, chain belongs to %q: %w", id, turn.ForcedPiece, errors.ErrForcedPiece)
		}
		if !contains(turn.Pending, target) {
			return rejected, fmt.Errorf("square %d not in %v: %w", target, turn.Pending, errors.ErrNotPending)
		}
	}

	capturedID, isCapture := CaptureAvailable(*p, target, e.state.Pieces)
	if !isCapture {
		if len(turn.Pending) > 0 && e.rules.MandatoryCapture {
			return rejected, fmt.Errorf("capture required: %w", errors.ErrNotPending)
		}
		if !contains(LegalSimpleMoves(*p, e.state.Pieces), target) {
			return rejected, fmt.Errorf("piece %q to square %d: %w", id, target, errors.ErrIllegalMove)
		}
	}

	// Everything below commits.
	result := game.MoveResult{Accepted: true}
	p.Location = target
	if isCapture {
		captured, _ := e.state.Pieces.Get(capturedID)
		e.penFor(p.Color, *captured)
		e.state.Pieces.Remove(capturedID)
		result.CapturedPieceID = capturedID
	}

	turn.JustPromoted = false
	if !p.King && p.Color.PromotionRow(p.Location) {
		p.King = true
		turn.JustPromoted = true
		result.Promoted = true
	}

	var chain []board.Square
	if isCapture && !turn.JustPromoted {
		chain = LegalCaptures(*p, e.state.Pieces)
	}
	if len(chain) > 0 {
		turn.InForcedCapture = true
		turn.ForcedPiece = id
		turn.Pending = uniqueSorted(chain)
	} else {
		e.passTurn()
	}

	e.state.Outcome = Evaluate(e.state.Pieces, turn.Active)
	result.Outcome = e.state.Outcome
	return result, nil
}

func (e *Engine) passTurn() {
	turn := &e.state.Turn
	turn.Active = turn.Active.Opponent()
	turn.InForcedCapture = false
	turn.ForcedPiece = ""
	turn.Pending = CaptureSquares(e.state.Pieces, turn.Active)
}

func (e *Engine) penFor(capturer game.Color, captured game.Piece) {
	if capturer == game.Red {
		e.state.Pens.Red = append(e.state.Pens.Red, captured)
		return
	}
	e.state.Pens.Black = append(e.state.Pens.Black, captured)
}
