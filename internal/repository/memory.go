package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkers/internal/domain/game"
	apperrors "checkers/internal/errors"
)

type memoryEntry struct {
	play      game.Game
	expiresAt time.Time
}

// MemoryGameRepository is the single-process store. Entries expire like the
// redis keys do; a zero ttl keeps them forever.
type MemoryGameRepository struct {
	mu    sync.RWMutex
	games map[string]memoryEntry
	ttl   time.Duration
	log   *zap.SugaredLogger
	now   func() time.Time
}

func NewMemoryGameRepository(ttl time.Duration, log *zap.SugaredLogger) *MemoryGameRepository {
	return &MemoryGameRepository{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		log:   log,
		now:   time.Now,
	}
}

func (m *MemoryGameRepository) GenerateGameID(ctx context.Context) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for {
		id := uuid.New().String()
		if _, taken := m.games[id]; !taken {
			return id
		}
	}
}

func (m *MemoryGameRepository) SaveGame(ctx context.Context, play game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{play: clone(play)}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.games[play.ID] = entry
	return nil
}

func (m *MemoryGameRepository) LoadGame(ctx context.Context, id string) (game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.games[id]
	if ok && m.expired(entry) {
		delete(m.games, id)
		m.log.Debugw("game expired", "game_id", id)
		ok = false
	}
	if !ok {
		return game.Game{}, fmt.Errorf("game %s: %w", id, apperrors.ErrGameNotFound)
	}
	return clone(entry.play), nil
}

func (m *MemoryGameRepository) DeleteGame(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, apperrors.ErrGameNotFound)
	}
	delete(m.games, id)
	return nil
}

func (m *MemoryGameRepository) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && m.now().After(e.expiresAt)
}

func clone(play game.Game) game.Game {
	play.State = play.State.Clone()
	return play
}
