package game

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	authWait     = 5 * time.Second
	pingInterval = 25 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ClientConn struct {
	ws   *websocket.Conn
	send chan []byte

	closeOnce sync.Once
}

func (c *ClientConn) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.ws.Close()
	})
}

func (c *ClientConn) push(env Envelope) {
	b, _ := json.Marshal(env)
	select {
	case c.send <- b:
	default:
		// клиент не успевает читать, дропаем
	}
}

func (c *ClientConn) pushError(code, message string) {
	c.push(Envelope{Type: "error", Payload: mustJSON(ErrorPayload{Code: code, Message: message})})
}

// handleWS — WebSocket вход в раунд: /ws/{roundId}
// Токен либо в Authorization: Bearer, либо первым сообщением {"type":"auth"}.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	roundID, ok := roundIDFromWSPath(r.URL.Path)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorPayload{Code: "bad_request", Message: "expected /ws/{roundId}"})
		return
	}

	headerAuth := false
	if h := r.Header.Get("Authorization"); h != "" {
		token, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || !s.tokenFor(token, roundID) {
			writeJSON(w, http.StatusUnauthorized, ErrorPayload{Code: "unauthorized", Message: "invalid token"})
			return
		}
		headerAuth = true
	}

	round, err := s.rounds.GetOrLoad(r.Context(), roundID)
	if err != nil {
		if errors.Is(err, ErrRoundNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorPayload{Code: "round_not_found", Message: "round not found"})
			return
		}
		s.log.Error("ws load round", "round", roundID, "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorPayload{Code: "internal", Message: "storage error"})
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	if !headerAuth && !s.awaitAuth(ws, roundID) {
		_ = ws.WriteJSON(Envelope{
			Type:    "error",
			Payload: mustJSON(ErrorPayload{Code: "unauthorized", Message: "auth required"}),
		})
		_ = ws.Close()
		return
	}

	cc := &ClientConn{
		ws:   ws,
		send: make(chan []byte, 64),
	}
	go cc.writeLoop()

	s.log.Debug("ws attached", "round", roundID)

	cc.push(Envelope{Type: "state", Payload: mustJSON(round.State())})

	// reader loop
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			cc.pushError("bad_json", "invalid json")
			continue
		}

		switch env.Type {
		case "submit_guess":
			var p SubmitGuessPayload
			if err := json.Unmarshal(env.Payload, &p); err != nil {
				cc.pushError("bad_input", "invalid payload")
				continue
			}
			s.submit(cc, round, p.Guess)

		case "state":
			cc.push(Envelope{Type: "state", Payload: mustJSON(round.State())})

		case "auth":
			// уже авторизованы

		default:
			cc.pushError("unknown_type", "unknown message type")
		}
	}

	cc.Close()
	s.log.Debug("ws detached", "round", roundID)
}

func (s *Server) submit(cc *ClientConn, round *Round, raw string) {
	guess, err := CheckGuess(strings.TrimSpace(raw), round.Length())
	if err != nil {
		cc.pushError(ErrorCode(err), err.Error())
		return
	}

	a, err := round.Submit(guess)
	if err != nil {
		cc.pushError(ErrorCode(err), err.Error())
		return
	}

	won := a.Bulls == round.Length()
	cc.push(Envelope{Type: "guess_result", Payload: mustJSON(GuessResultPayload{
		Bulls:    a.Bulls,
		Cows:     a.Cows,
		Won:      won,
		Attempts: round.Attempts(),
	})})

	if won {
		st := round.State()
		cc.push(Envelope{Type: "round_won", Payload: mustJSON(map[string]any{
			"secret":   st.Secret,
			"attempts": st.Attempts,
		})})
		cc.push(Envelope{Type: "state", Payload: mustJSON(st)})
	}
}

// awaitAuth reads the first message and expects a valid auth envelope.
func (s *Server) awaitAuth(ws *websocket.Conn, roundID string) bool {
	_ = ws.SetReadDeadline(time.Now().Add(authWait))
	defer func() { _ = ws.SetReadDeadline(time.Time{}) }()

	_, data, err := ws.ReadMessage()
	if err != nil {
		return false
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Type != "auth" {
		return false
	}
	var p AuthPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return false
	}
	return s.tokenFor(p.Token, roundID)
}

func (s *Server) tokenFor(token, roundID string) bool {
	if _, err := s.verifier.VerifyFor(token, roundID); err != nil {
		s.log.Debug("ws token rejected", "round", roundID, "err", err)
		return false
	}
	return true
}

func (c *ClientConn) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.ws.WriteMessage(websocket.TextMessage, msg)
		case <-ticker.C:
			_ = c.ws.WriteMessage(websocket.PingMessage, []byte{})
		}
	}
}

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
