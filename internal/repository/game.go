package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"checkers/internal/bootstrap"
	"checkers/internal/domain/game"
	apperrors "checkers/internal/errors"
)

const gameKeyPrefix = "checkers:game:"

// GameRepository keeps live games in redis as JSON snapshots that expire
// after cfg.GameTTL of inactivity.
type GameRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
}

func NewGameRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client) *GameRepository {
	return &GameRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
	}
}

func (g *GameRepository) GenerateGameID(ctx context.Context) string {
	for {
		id := uuid.New().String()
		n, err := g.redis.Exists(ctx, gameKey(id)).Result()
		if err != nil || n == 0 {
			return id
		}
	}
}

func (g *GameRepository) SaveGame(ctx context.Context, play game.Game) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := json.Marshal(play)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", play.ID, err)
	}
	if err := g.redis.Set(ctx, gameKey(play.ID), data, g.cfg.GameTTL).Err(); err != nil {
		g.log.Errorw("failed to save game", "game_id", play.ID, "error", err)
		return fmt.Errorf("save game %s: %w", play.ID, err)
	}
	return nil
}

func (g *GameRepository) LoadGame(ctx context.Context, id string) (game.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := g.redis.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return game.Game{}, fmt.Errorf("game %s: %w", id, apperrors.ErrGameNotFound)
	} else if err != nil {
		g.log.Errorw("failed to load game", "game_id", id, "error", err)
		return game.Game{}, fmt.Errorf("load game %s: %w", id, err)
	}

	var play game.Game
	if err := json.Unmarshal(data, &play); err != nil {
		return game.Game{}, fmt.Errorf("decode game %s: %w", id, err)
	}
	return play, nil
}

func (g *GameRepository) DeleteGame(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := g.redis.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("game %s: %w", id, apperrors.ErrGameNotFound)
	}
	return nil
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}
