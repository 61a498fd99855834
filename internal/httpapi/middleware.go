package httpapi

import (
	"context"
	"net/http"
	"strings"

	"example.com/bullscows/internal/auth"
)

type ctxKey string

const roundIDKey ctxKey = "roundID"

// Verifier проверяет bearer-токен раунда.
type Verifier interface {
	Verify(token string) (*auth.Claims, error)
}

func AuthMiddleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			token := strings.TrimPrefix(h, "Bearer ")

			claims, err := v.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), roundIDKey, claims.RoundID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RoundIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(roundIDKey)
	s, ok := v.(string)
	return s, ok
}
