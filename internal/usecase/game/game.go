package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"checkers/internal/domain/board"
	"checkers/internal/domain/game"
	"checkers/internal/engine"
)

type GameStore interface {
	GenerateGameID(ctx context.Context) string
	SaveGame(ctx context.Context, play game.Game) error
	LoadGame(ctx context.Context, id string) (game.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// GameUseCase runs games held in a GameStore. Calls on the same game are
// serialized so that every move runs to completion before the next one.
type GameUseCase struct {
	store    GameStore
	log      *zap.SugaredLogger
	defaults game.Rules
	now      func() time.Time

	mu    sync.Mutex
	locks map[string]*gameLock
}

// gameLock is dropped from the map once nobody holds or waits for it.
type gameLock struct {
	sync.Mutex
	refs int
}

func NewGameUseCase(store GameStore, log *zap.SugaredLogger, defaults game.Rules) *GameUseCase {
	return &GameUseCase{
		store:    store,
		log:      log,
		defaults: defaults,
		now:      time.Now,
		locks:    make(map[string]*gameLock),
	}
}

func (g *GameUseCase) CreateGame(ctx context.Context, req game.CreateGameRequest) (game.Game, error) {
	rules := g.defaults
	if req.MandatoryCapture != nil {
		rules.MandatoryCapture = *req.MandatoryCapture
	}

	now := g.now()
	play := game.Game{
		ID:        g.store.GenerateGameID(ctx),
		CreatedAt: now,
		UpdatedAt: now,
		Rules:     rules,
		State:     engine.New(rules).Snapshot(),
	}
	if err := g.store.SaveGame(ctx, play); err != nil {
		return game.Game{}, err
	}

	g.log.Infow("game created", "game_id", play.ID, "mandatory_capture", rules.MandatoryCapture)
	return play, nil
}

func (g *GameUseCase) GetGame(ctx context.Context, id string) (game.Game, error) {
	return g.store.LoadGame(ctx, id)
}

// AttemptMove applies one move. A rejected move returns the unchanged game
// together with the rejection error.
func (g *GameUseCase) AttemptMove(ctx context.Context, id string, req game.MoveRequest) (game.MoveResult, game.Game, error) {
	unlock := g.lock(id)
	defer unlock()

	// TODO: guard the load/save pair with a redis WATCH transaction once
	// more than one server instance shares the store.
	play, err := g.store.LoadGame(ctx, id)
	if err != nil {
		return game.MoveResult{}, game.Game{}, err
	}

	eng := engine.Restore(play.Rules, play.State)
	result, err := eng.AttemptMove(req.PieceID, req.Target)
	if err != nil {
		g.log.Debugw("move rejected", "game_id", id, "piece", req.PieceID, "target", req.Target, "reason", err)
		return result, play, err
	}

	play.State = eng.Snapshot()
	play.UpdatedAt = g.now()
	if err := g.store.SaveGame(ctx, play); err != nil {
		return game.MoveResult{}, game.Game{}, fmt.Errorf("move accepted but not stored: %w", err)
	}

	g.log.Infow("move accepted",
		"game_id", id,
		"piece", req.PieceID,
		"target", req.Target,
		"captured", result.CapturedPieceID,
		"promoted", result.Promoted,
		"outcome", result.Outcome.String(),
	)
	return result, play, nil
}

func (g *GameUseCase) LegalDestinations(ctx context.Context, id string, pieceID game.PieceID) ([]board.Square, error) {
	play, err := g.store.LoadGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.Restore(play.Rules, play.State).LegalDestinations(pieceID)
}

func (g *GameUseCase) Outcome(ctx context.Context, id string) (game.Outcome, error) {
	play, err := g.store.LoadGame(ctx, id)
	if err != nil {
		return game.InProgress, err
	}
	return play.State.Outcome, nil
}

func (g *GameUseCase) ResetGame(ctx context.Context, id string) (game.Game, error) {
	unlock := g.lock(id)
	defer unlock()

	play, err := g.store.LoadGame(ctx, id)
	if err != nil {
		return game.Game{}, err
	}
	eng := engine.Restore(play.Rules, play.State)
	eng.Reset()
	play.State = eng.Snapshot()
	play.UpdatedAt = g.now()
	if err := g.store.SaveGame(ctx, play); err != nil {
		return game.Game{}, err
	}

	g.log.Infow("game reset", "game_id", id)
	return play, nil
}

func (g *GameUseCase) DeleteGame(ctx context.Context, id string) error {
	unlock := g.lock(id)
	defer unlock()

	if err := g.store.DeleteGame(ctx, id); err != nil {
		return err
	}

	g.log.Infow("game deleted", "game_id", id)
	return nil
}

// StateOf renders a stored game for the view layer.
func StateOf(play game.Game) game.GameStateResponse {
	eng := engine.Restore(play.Rules, play.State)
	return game.GameStateResponse{
		ID:      play.ID,
		Status:  eng.Status(),
		Pieces:  play.State.Pieces.List(),
		Turn:    play.State.Turn,
		Outcome: play.State.Outcome,
		Pens:    play.State.Pens,
		Rules:   play.Rules,
	}
}

func (g *GameUseCase) lock(id string) func() {
	g.mu.Lock()
	l, ok := g.locks[id]
	if !ok {
		l = &gameLock{}
		g.locks[id] = l
	}
	l.refs++
	g.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		g.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.locks, id)
		}
		g.mu.Unlock()
	}
}
