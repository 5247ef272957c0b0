package game

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"checkers/internal/domain/game"
	"checkers/internal/httpresponse"
	gameuc "checkers/internal/usecase/game"
	"checkers/internal/utils"
)

const (
	wsIdlePingInterval = 30 * time.Second
	// A client that neither moves nor closes for this long is dropped.
	wsReadTimeout = 10 * time.Minute
)

type wsMessage struct {
	Type  string                  `json:"type"`
	Game  *game.GameStateResponse `json:"game,omitempty"`
	Move  *game.MoveResponse      `json:"move,omitempty"`
	Error string                  `json:"error,omitempty"`
}

// HandleGameWS streams one game: it sends the current state on connect,
// then answers every move request read from the socket with a move message.
func (g *GameHandler) HandleGameWS(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	play, err := g.gameUC.GetGame(r.Context(), gameID)
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warnw("websocket upgrade failed", "game_id", gameID, "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(utils.MaxBodyBytes)

	send := make(chan []byte, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := writeWSWithHeartbeat(conn, send, g.pingInterval); err != nil {
			g.log.Debugw("websocket write stopped", "game_id", gameID, "error", err)
		}
	}()
	defer func() {
		close(send)
		<-done
	}()

	push := func(msg wsMessage) bool {
		select {
		case send <- mustMarshal(msg):
			return true
		case <-done:
			return false
		}
	}

	state := gameuc.StateOf(play)
	if !push(wsMessage{Type: "state", Game: &state}) {
		return
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(g.readTimeout))
		var req game.MoveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.Warnw("websocket read failed", "game_id", gameID, "error", err)
			}
			return
		}

		msg := wsMessage{Type: "move"}
		resp, err := g.move(r, gameID, req)
		if err != nil && resp.Game.ID == "" {
			msg = wsMessage{Type: "error", Error: err.Error()}
		} else {
			msg.Move = &resp
		}
		if !push(msg) {
			return
		}
	}
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < interval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
