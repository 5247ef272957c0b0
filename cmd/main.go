package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"checkers/internal/adapters"
	"checkers/internal/bootstrap"
	gameDelivery "checkers/internal/delivery/game"
	"checkers/internal/domain/game"
	ownMiddleware "checkers/internal/middleware"
	repo "checkers/internal/repository"
	gameuc "checkers/internal/usecase/game"
)

type mainDeliveryHandler struct {
	game *gameDelivery.GameHandler
}

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		NewLogger(false).Fatalw("failed to setup configuration", "error", err)
	}
	logger := NewLogger(cfg.LogDev)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	store, closeStore := initGameStore(ctx, logger, cfg)
	defer closeStore()

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger, store)
	handlers.Router(r, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("server shutdown", "error", err)
		}
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("failed to start server", "error", err)
	}
}

func NewLogger(dev bool) *zap.SugaredLogger {
	build := zap.NewProduction
	if dev {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, cfg *bootstrap.Config) {
	if cfg.IsLocalCors {
		r.Use(ownMiddleware.CORS(cfg.AllowedOrigins))
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h.game.Routes(r)
}

func initGameStore(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) (gameuc.GameStore, func()) {
	if cfg.Store != bootstrap.StoreRedis {
		log.Infow("using in-memory game store", "ttl", cfg.GameTTL)
		return repo.NewMemoryGameRepository(cfg.GameTTL, log), func() {}
	}

	redisAdapter := adapters.NewAdapterRedis(cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatalw("failed to initialize redis", "error", err)
	}
	closeRedis := func() {
		if err := redisAdapter.Close(context.Background()); err != nil {
			log.Errorw("redis close", "error", err)
		}
	}
	return repo.NewGameRepository(*cfg, log, redisAdapter.GetClient()), closeRedis
}

func initializeDeliveryHandlers(cfg bootstrap.Config, log *zap.SugaredLogger, store gameuc.GameStore) *mainDeliveryHandler {
	useCase := gameuc.NewGameUseCase(store, log, game.Rules{MandatoryCapture: cfg.MandatoryCapture})
	return &mainDeliveryHandler{
		game: gameDelivery.NewGameHandler(cfg, log, useCase),
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
