package errors

import "errors"

var (
	ErrInvalidSquare = errors.New("square is outside 1..32")
	ErrUnknownPiece  = errors.New("piece is not in play")
	ErrNotYourTurn   = errors.New("piece does not belong to the side to move")
	ErrForcedPiece   = errors.New("capture chain must continue with the same piece")
	ErrNotPending    = errors.New("target is not one of the pending capture squares")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over")
	ErrGameNotFound  = errors.New("game not found")
)
