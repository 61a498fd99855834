package game

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"example.com/bullscows/internal/auth"
	"github.com/google/uuid"
)

// TokenVerifier проверяет, что токен выдан именно для этого раунда (JWT).
type TokenVerifier interface {
	VerifyFor(token, roundID string) (*auth.Claims, error)
}

type Server struct {
	rounds   *RoundService
	verifier TokenVerifier
	log      *slog.Logger
}

func NewServer(rounds *RoundService, verifier TokenVerifier, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		rounds:   rounds,
		verifier: verifier,
		log:      log,
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/", s.handleWS)
}

// roundIDFromWSPath accepts exactly /ws/<uuid> in canonical form.
func roundIDFromWSPath(path string) (string, bool) {
	id, ok := strings.CutPrefix(path, "/ws/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	u, err := uuid.Parse(id)
	if err != nil || u.String() != id {
		return "", false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
