// Package board holds the fixed topology of the 32 playable squares of an
// 8x8 draughts board in standard numbering.
package board

import (
	"fmt"

	"checkers/internal/errors"
)

// Square identifies one of the 32 dark squares, 1..32.
type Square int

const (
	MinSquare Square = 1
	MaxSquare Square = 32
)

// Jump is one capture geometry entry: the square jumped over and the square
// the capturing piece lands on.
type Jump struct {
	Over    Square `json:"over"`
	Landing Square `json:"landing"`
}

func (s Square) Valid() bool {
	return s >= MinSquare && s <= MaxSquare
}

// Validate returns errors.ErrInvalidSquare wrapped with the offending value.
func Validate(s Square) error {
	if !s.Valid() {
		return fmt.Errorf("square %d: %w", s, errors.ErrInvalidSquare)
	}
	return nil
}

// Neighbors returns the simple-move diagonal neighbours of s.
// The returned slice is a copy.
func Neighbors(s Square) ([]Square, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return append([]Square(nil), neighbors[s]...), nil
}

// CaptureOptions returns the jump/landing pairs available from s.
// The returned slice is a copy.
func CaptureOptions(s Square) ([]Jump, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return append([]Jump(nil), captures[s]...), nil
}

// IsNeighbor reports whether target is a simple-move neighbour of s.
func IsNeighbor(s, target Square) bool {
	if !s.Valid() {
		return false
	}
	for _, n := range neighbors[s] {
		if n == target {
			return true
		}
	}
	return false
}

// JumpOver returns the square crossed when capturing from s onto landing.
func JumpOver(s, landing Square) (Square, bool) {
	if !s.Valid() {
		return 0, false
	}
	for _, j := range captures[s] {
		if j.Landing == landing {
			return j.Over, true
		}
	}
	return 0, false
}

// All returns every playable square in ascending order.
func All() []Square {
	out := make([]Square, 0, MaxSquare)
	for s := MinSquare; s <= MaxSquare; s++ {
		out = append(out, s)
	}
	return out
}
