// Package engine implements the English draughts rules: occupancy-aware move
// enumeration, the turn state machine and win detection.
package engine

import (
	"sort"

	"checkers/internal/domain/board"
	"checkers/internal/domain/game"
)

// LegalSimpleMoves returns the unoccupied neighbours p may step to.
func LegalSimpleMoves(p game.Piece, set game.PieceSet) []board.Square {
	neighbors, err := board.Neighbors(p.Location)
	if err != nil {
		return nil
	}
	out := make([]board.Square, 0, len(neighbors))
	for _, target := range neighbors {
		if !p.CanSimpleMoveTo(target) || set.Occupied(target) {
			continue
		}
		out = append(out, target)
	}
	return out
}

// LegalCaptures returns the landing squares p may jump to. A capture needs
// an empty landing square and an opposing piece on the jumped square.
func LegalCaptures(p game.Piece, set game.PieceSet) []board.Square {
	jumps, err := board.CaptureOptions(p.Location)
	if err != nil {
		return nil
	}
	out := make([]board.Square, 0, len(jumps))
	for _, j := range jumps {
		if _, ok := CaptureAvailable(p, j.Landing, set); ok {
			out = append(out, j.Landing)
		}
	}
	return out
}

// CaptureAvailable resolves a capture onto target and returns the piece
// that would be removed.
func CaptureAvailable(p game.Piece, target board.Square, set game.PieceSet) (game.PieceID, bool) {
	over, ok := p.CaptureLandingFor(target)
	if !ok || set.Occupied(target) {
		return "", false
	}
	jumped, ok := set.At(over)
	if !ok || jumped.Color == p.Color {
		return "", false
	}
	return jumped.ID, true
}

// CaptureSquares is the union of LegalCaptures over every piece of c,
// ascending and without duplicates.
func CaptureSquares(set game.PieceSet, c game.Color) []board.Square {
	var out []board.Square
	for _, p := range set.OfColor(c) {
		out = append(out, LegalCaptures(*p, set)...)
	}
	return uniqueSorted(out)
}

// HasAnyMove reports whether c has at least one simple move or capture.
func HasAnyMove(set game.PieceSet, c game.Color) bool {
	for _, p := range set.OfColor(c) {
		if len(LegalSimpleMoves(*p, set)) > 0 || len(LegalCaptures(*p, set)) > 0 {
			return true
		}
	}
	return false
}

func uniqueSorted(squares []board.Square) []board.Square {
	out := make([]board.Square, 0, len(squares))
	seen := make(map[board.Square]struct{}, len(squares))
	for _, sq := range squares {
		if _, ok := seen[sq]; ok {
			continue
		}
		seen[sq] = struct{}{}
		out = append(out, sq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func contains(squares []board.Square, sq board.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
