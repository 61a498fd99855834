package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrRoundNotFound = errors.New("round not found")

const persistTimeout = 2 * time.Second

type Config struct {
	DefaultLength int
	Seed          int64 // 0 => seed every round from crypto/rand
}

// RoundService отвечает за:
// - in-memory кэш раундов
// - восстановление раундов из persistent storage (Redis)
// - отдельный источник случайности на каждый раунд
type RoundService struct {
	mu     sync.Mutex
	in     map[string]*Round
	issued int64

	cfg     Config
	persist RoundPersistence
	log     *slog.Logger
}

func NewRoundService(cfg Config, persist RoundPersistence, log *slog.Logger) *RoundService {
	if log == nil {
		log = slog.Default()
	}
	if cfg.DefaultLength == 0 {
		cfg.DefaultLength = 4
	}
	return &RoundService{
		in:      make(map[string]*Round),
		cfg:     cfg,
		persist: persist,
		log:     log,
	}
}

// Create starts a round of the given length; length 0 means the configured default.
func (s *RoundService) Create(ctx context.Context, length int) (*Round, error) {
	if length == 0 {
		length = s.cfg.DefaultLength
	}

	rng, err := s.newRand()
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	r, err := NewRound(id, length, rng)
	if err != nil {
		return nil, err
	}
	r.onPersist = s.persistHook(id)

	r.mu.Lock()
	snap := r.snapshotLocked()
	r.mu.Unlock()
	if err := s.persist.Save(ctx, id, snap); err != nil {
		return nil, fmt.Errorf("save round %s: %w", id, err)
	}

	s.mu.Lock()
	s.in[id] = r
	s.mu.Unlock()

	s.log.Info("round created", "round", id, "length", length)
	return r, nil
}

func (s *RoundService) GetOrLoad(ctx context.Context, roundID string) (*Round, error) {
	s.mu.Lock()
	r, ok := s.in[roundID]
	s.mu.Unlock()
	if ok {
		return r, nil
	}

	snap, found, err := s.persist.Load(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("load round %s: %w", roundID, err)
	}
	if !found {
		return nil, ErrRoundNotFound
	}

	r, err = restoreRound(snap)
	if err != nil {
		return nil, err
	}
	r.onPersist = s.persistHook(roundID)

	if r.phase == PhaseWon {
		return r, nil
	}

	s.mu.Lock()
	// параллельный запрос мог успеть раньше
	if existing, ok := s.in[roundID]; ok {
		r = existing
	} else {
		s.in[roundID] = r
	}
	s.mu.Unlock()

	s.log.Debug("round restored", "round", roundID, "phase", r.Phase())
	return r, nil
}

// Forget drops a round from the in-memory cache; persisted state stays until TTL.
func (s *RoundService) Forget(roundID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.in, roundID)
}

func (s *RoundService) persistHook(roundID string) func(RoundSnapshot) {
	return func(snap RoundSnapshot) {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.persist.Save(ctx, roundID, snap); err != nil {
			s.log.Error("persist round", "round", roundID, "err", err)
			return
		}
		// выигранный раунд больше не меняется, читаем его из storage до TTL
		if snap.Phase == PhaseWon {
			s.Forget(roundID)
			s.log.Debug("round won, evicted from cache", "round", roundID, "attempts", len(snap.History))
		}
	}
}

func (s *RoundService) newRand() (Rand, error) {
	if s.cfg.Seed == 0 {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		return NewRand(seed), nil
	}

	s.mu.Lock()
	s.issued++
	n := s.issued
	s.mu.Unlock()
	return NewRand(s.cfg.Seed + n), nil
}
