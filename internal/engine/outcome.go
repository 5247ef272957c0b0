package engine

import "checkers/internal/domain/game"

// Evaluate derives the terminal state from piece counts and from whether
// the side to move has any legal action.
func Evaluate(set game.PieceSet, active game.Color) game.Outcome {
	if set.Count(game.Black) == 0 {
		return game.RedWins
	}
	if set.Count(game.Red) == 0 {
		return game.BlackWins
	}
	if !HasAnyMove(set, active) {
		return game.WinFor(active.Opponent())
	}
	return game.InProgress
}
