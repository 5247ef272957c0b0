package game

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"checkers/internal/domain/board"
	"checkers/internal/domain/game"
	apperrors "checkers/internal/errors"
	repo "checkers/internal/repository"
)

func newUseCase() *GameUseCase {
	log := zap.NewNop().Sugar()
	return NewGameUseCase(repo.NewMemoryGameRepository(0, log), log, game.Rules{})
}

func TestCreateAndMove(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	play, err := uc.CreateGame(ctx, game.CreateGameRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, play.ID)
	assert.Equal(t, game.Black, play.State.Turn.Active)

	res, updated, err := uc.AttemptMove(ctx, play.ID, game.MoveRequest{PieceID: "p22", Target: 18})
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, game.Red, updated.State.Turn.Active)

	stored, err := uc.GetGame(ctx, play.ID)
	require.NoError(t, err)
	p, _ := stored.State.Pieces.Get("p22")
	assert.Equal(t, board.Square(18), p.Location)
	assert.Equal(t, "Red's Turn", StateOf(stored).Status)
}

func TestRejectedMoveIsNotStored(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	play, err := uc.CreateGame(ctx, game.CreateGameRequest{})
	require.NoError(t, err)

	res, unchanged, err := uc.AttemptMove(ctx, play.ID, game.MoveRequest{PieceID: "p9", Target: 13})
	require.ErrorIs(t, err, apperrors.ErrNotYourTurn)
	assert.False(t, res.Accepted)
	assert.Equal(t, play.State, unchanged.State)

	stored, err := uc.GetGame(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, play.State, stored.State)
}

func TestUnknownGame(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	_, _, err := uc.AttemptMove(ctx, "nope", game.MoveRequest{PieceID: "p22", Target: 18})
	assert.ErrorIs(t, err, apperrors.ErrGameNotFound)
	_, err = uc.LegalDestinations(ctx, "nope", "p22")
	assert.ErrorIs(t, err, apperrors.ErrGameNotFound)
	_, err = uc.Outcome(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrGameNotFound)
	assert.ErrorIs(t, uc.DeleteGame(ctx, "nope"), apperrors.ErrGameNotFound)
}

func TestCreateGameRules(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop().Sugar()
	uc := NewGameUseCase(repo.NewMemoryGameRepository(0, log), log, game.Rules{MandatoryCapture: true})

	play, err := uc.CreateGame(ctx, game.CreateGameRequest{})
	require.NoError(t, err)
	assert.True(t, play.Rules.MandatoryCapture)

	off := false
	play, err = uc.CreateGame(ctx, game.CreateGameRequest{MandatoryCapture: &off})
	require.NoError(t, err)
	assert.False(t, play.Rules.MandatoryCapture)
}

func TestDestinationsResetAndOutcome(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	play, err := uc.CreateGame(ctx, game.CreateGameRequest{})
	require.NoError(t, err)

	dests, err := uc.LegalDestinations(ctx, play.ID, "p21")
	require.NoError(t, err)
	assert.Equal(t, []board.Square{17}, dests)

	_, _, err = uc.AttemptMove(ctx, play.ID, game.MoveRequest{PieceID: "p21", Target: 17})
	require.NoError(t, err)

	reset, err := uc.ResetGame(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, play.State, reset.State)

	outcome, err := uc.Outcome(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, game.InProgress, outcome)

	require.NoError(t, uc.DeleteGame(ctx, play.ID))
	_, err = uc.GetGame(ctx, play.ID)
	assert.ErrorIs(t, err, apperrors.ErrGameNotFound)
}

func TestConcurrentMovesAreSerialized(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	play, err := uc.CreateGame(ctx, game.CreateGameRequest{})
	require.NoError(t, err)

	// Both requests are legal on their own; only one can be the first move.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, req := range []game.MoveRequest{{PieceID: "p22", Target: 18}, {PieceID: "p23", Target: 18}} {
		wg.Add(1)
		go func(i int, req game.MoveRequest) {
			defer wg.Done()
			_, _, errs[i] = uc.AttemptMove(ctx, play.ID, req)
		}(i, req)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
		}
	}
	assert.Equal(t, 1, accepted)

	stored, err := uc.GetGame(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, game.Red, stored.State.Turn.Active)
}

func TestLocksAreReleased(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("bogus-%d", i)
		_, _, err := uc.AttemptMove(ctx, id, game.MoveRequest{PieceID: "p22", Target: 18})
		require.ErrorIs(t, err, apperrors.ErrGameNotFound)
		_, err = uc.ResetGame(ctx, id)
		require.ErrorIs(t, err, apperrors.ErrGameNotFound)
		require.ErrorIs(t, uc.DeleteGame(ctx, id), apperrors.ErrGameNotFound)
	}

	play, err := uc.CreateGame(ctx, game.CreateGameRequest{})
	require.NoError(t, err)
	_, _, err = uc.AttemptMove(ctx, play.ID, game.MoveRequest{PieceID: "p22", Target: 18})
	require.NoError(t, err)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	assert.Empty(t, uc.locks)
}
