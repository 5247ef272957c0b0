package game

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"checkers/internal/bootstrap"
	"checkers/internal/domain/game"
	"checkers/internal/httpresponse"
	"checkers/internal/middleware"
	gameuc "checkers/internal/usecase/game"
	"checkers/internal/utils"
)

type GameHandler struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	gameUC   *gameuc.GameUseCase
	upgrader websocket.Upgrader

	pingInterval time.Duration
	readTimeout  time.Duration
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *GameHandler {
	return &GameHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(cfg.AllowedOrigins, r)
			},
		},
		pingInterval: wsIdlePingInterval,
		readTimeout:  wsReadTimeout,
	}
}

func (g *GameHandler) Routes(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Post("/", g.HandleNewGame)
		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", g.HandleGetGame)
			r.Delete("/", g.HandleDeleteGame)
			r.Post("/reset", g.HandleResetGame)
			r.Post("/moves", g.HandleMove)
			r.Get("/outcome", g.HandleOutcome)
			r.Get("/pieces/{pieceID}/destinations", g.HandleDestinations)
			r.Get("/ws", g.HandleGameWS)
		})
	})
}

func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req game.CreateGameRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Warnw("bad create request", "error", err)
		httpresponse.WriteMalformedJSON(w, err)
		return
	}

	play, err := g.gameUC.CreateGame(r.Context(), req)
	if err != nil {
		g.log.Errorw("create game failed", "error", err)
		httpresponse.WriteError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, gameuc.StateOf(play))
}

func (g *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	play, err := g.gameUC.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, gameuc.StateOf(play))
}

func (g *GameHandler) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := g.gameUC.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameHandler) HandleResetGame(w http.ResponseWriter, r *http.Request) {
	play, err := g.gameUC.ResetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, gameuc.StateOf(play))
}

// HandleMove answers rejected moves with the rejection status and the
// unchanged game so the view can snap the dragged piece back.
func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		httpresponse.WriteMalformedJSON(w, err)
		return
	}

	resp, err := g.move(r, chi.URLParam(r, "gameID"), req)
	if err != nil && resp.Game.ID == "" {
		httpresponse.WriteError(w, err)
		return
	}
	status := http.StatusOK
	if err != nil {
		status = httpresponse.StatusFor(err)
	}
	httpresponse.WriteResponseWithStatus(w, status, resp)
}

func (g *GameHandler) HandleOutcome(w http.ResponseWriter, r *http.Request) {
	outcome, err := g.gameUC.Outcome(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, OutcomeResponse{Outcome: outcome, Over: outcome.Over()})
}

func (g *GameHandler) HandleDestinations(w http.ResponseWriter, r *http.Request) {
	pieceID := game.PieceID(chi.URLParam(r, "pieceID"))
	dests, err := g.gameUC.LegalDestinations(r.Context(), chi.URLParam(r, "gameID"), pieceID)
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, game.DestinationsResponse{PieceID: pieceID, Destinations: dests})
}

func (g *GameHandler) move(r *http.Request, gameID string, req game.MoveRequest) (game.MoveResponse, error) {
	result, play, err := g.gameUC.AttemptMove(r.Context(), gameID, req)
	if play.ID == "" {
		return game.MoveResponse{}, err
	}
	resp := game.MoveResponse{Result: result, Game: gameuc.StateOf(play)}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp, err
}

type OutcomeResponse struct {
	Outcome game.Outcome `json:"outcome"`
	Over    bool         `json:"over"`
}
