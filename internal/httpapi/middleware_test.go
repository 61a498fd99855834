package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"example.com/bullscows/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	svc := auth.NewService([]byte("k"))
	good, err := svc.Sign("r1", time.Hour)
	require.NoError(t, err)

	var seen string
	h := AuthMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RoundIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "ok", header: "Bearer " + good, want: http.StatusNoContent},
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "no_bearer_prefix", header: good, want: http.StatusUnauthorized},
		{name: "bad_token", header: "Bearer nope", want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/api/round", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusNoContent {
				assert.Equal(t, "r1", seen)
			} else {
				assert.Empty(t, seen)
			}
		})
	}
}
