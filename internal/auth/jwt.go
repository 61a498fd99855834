package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrWrongRound = errors.New("token issued for another round")

// Claims binds a client to a single round.
type Claims struct {
	RoundID string `json:"rid"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
}

func NewService(secret []byte) *Service {
	return &Service{secret: secret}
}

func (s *Service) Sign(roundID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RoundID: roundID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   roundID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *Service) Verify(token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.RoundID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// VerifyFor checks the token and that it belongs to roundID.
func (s *Service) VerifyFor(token, roundID string) (*Claims, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.RoundID != roundID {
		return nil, fmt.Errorf("%w: %s", ErrWrongRound, claims.RoundID)
	}
	return claims, nil
}
