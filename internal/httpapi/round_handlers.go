package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"example.com/bullscows/internal/game"
)

// Signer выдаёт токен, привязанный к раунду.
type Signer interface {
	Sign(roundID string, ttl time.Duration) (string, error)
}

type RoundHandler struct {
	Rounds   *game.RoundService
	Auth     Signer
	TokenTTL time.Duration
	Log      *slog.Logger
}

type CreateRoundRequest struct {
	Length int `json:"length"`
}

type CreateRoundResponse struct {
	RoundID string `json:"roundId"`
	Token   string `json:"token"`
	Length  int    `json:"length"`
}

type GuessRequest struct {
	Guess string `json:"guess"`
}

func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	var req CreateRoundRequest
	// пустое тело => длина по умолчанию
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
		return
	}

	round, err := h.Rounds.Create(r.Context(), req.Length)
	if err != nil {
		if code, status := errorStatus(err); status == http.StatusBadRequest {
			writeError(w, status, code, "length must be between 1 and 9")
			return
		}
		h.logger().Error("create round", "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to create round")
		return
	}

	token, err := h.Auth.Sign(round.ID(), h.TokenTTL)
	if err != nil {
		h.logger().Error("sign round token", "round", round.ID(), "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}

	writeJSON(w, http.StatusCreated, CreateRoundResponse{
		RoundID: round.ID(),
		Token:   token,
		Length:  round.Length(),
	})
}

func (h *RoundHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}

	round, ok := h.roundFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, round.State())
}

func (h *RoundHandler) Guess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
		return
	}

	round, ok := h.roundFromRequest(w, r)
	if !ok {
		return
	}

	guess, err := game.CheckGuess(strings.TrimSpace(req.Guess), round.Length())
	if err != nil {
		code, status := errorStatus(err)
		writeError(w, status, code, err.Error())
		return
	}

	a, err := round.Submit(guess)
	if err != nil {
		code, status := errorStatus(err)
		writeError(w, status, code, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, game.GuessResultPayload{
		Bulls:    a.Bulls,
		Cows:     a.Cows,
		Won:      a.Bulls == round.Length(),
		Attempts: round.Attempts(),
	})
}

// errorStatus maps a core error to its API code and HTTP status.
func errorStatus(err error) (string, int) {
	code := game.ErrorCode(err)
	switch code {
	case "bad_guess", "repeated_digits", "bad_length":
		return code, http.StatusBadRequest
	case "round_finished":
		return code, http.StatusConflict
	case "round_not_found":
		return code, http.StatusNotFound
	default:
		return code, http.StatusInternalServerError
	}
}

func (h *RoundHandler) roundFromRequest(w http.ResponseWriter, r *http.Request) (*game.Round, bool) {
	roundID, ok := RoundIDFromContext(r.Context())
	if !ok || roundID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing auth context")
		return nil, false
	}

	round, err := h.Rounds.GetOrLoad(r.Context(), roundID)
	if err != nil {
		code, status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger().Error("load round", "round", roundID, "err", err)
			writeError(w, status, code, "storage error")
			return nil, false
		}
		writeError(w, status, code, err.Error())
		return nil, false
	}
	return round, true
}

func (h *RoundHandler) logger() *slog.Logger {
	if h.Log == nil {
		return slog.Default()
	}
	return h.Log
}
