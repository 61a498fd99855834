package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"example.com/bullscows/internal/auth"
	"example.com/bullscows/internal/config"
	"example.com/bullscows/internal/game"
	"example.com/bullscows/internal/httpapi"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	rdb *redis.Client // nil => in-memory rounds

	srv *http.Server
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}

	// --- Round persistence ---
	var (
		rdb     *redis.Client
		persist game.RoundPersistence
	)
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})

		// fail fast
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping (%s db=%d): %w", cfg.Redis.Addr, cfg.Redis.DB, err)
		}
		persist = game.NewRedisRoundStore(rdb, cfg.Redis.RoundTTL)
		log.Info("round store: redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB, "ttl", cfg.Redis.RoundTTL)
	} else {
		persist = game.NewInMemoryRoundStore()
		log.Info("round store: in-memory")
	}

	// --- Auth service ---
	authSvc := auth.NewService([]byte(cfg.Auth.Secret))

	// --- Game ---
	rounds := game.NewRoundService(game.Config{
		DefaultLength: cfg.Game.DefaultLength,
		Seed:          cfg.Game.Seed,
	}, persist, log)
	gameSrv := game.NewServer(rounds, authSvc, log)

	roundH := &httpapi.RoundHandler{
		Rounds:   rounds,
		Auth:     authSvc,
		TokenTTL: cfg.Auth.TokenTTL,
		Log:      log,
	}

	return &App{
		cfg: cfg,
		log: log,
		rdb: rdb,
		srv: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           routes(gameSrv, roundH, authSvc),
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			ReadTimeout:       cfg.HTTP.ReadTimeout,
			WriteTimeout:      cfg.HTTP.WriteTimeout,
			IdleTimeout:       cfg.HTTP.IdleTimeout,
		},
	}, nil
}

func routes(gameSrv *game.Server, roundH *httpapi.RoundHandler, v httpapi.Verifier) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	gameSrv.RegisterRoutes(mux)

	// --- round routes ---
	authed := httpapi.AuthMiddleware(v)
	mux.HandleFunc("/api/round", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			roundH.Create(w, r)
			return
		}
		authed(http.HandlerFunc(roundH.State)).ServeHTTP(w, r)
	})
	mux.Handle("/api/round/guess", authed(http.HandlerFunc(roundH.Guess)))

	return mux
}

func (a *App) Handler() http.Handler { return a.srv.Handler }

func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	a.log.Info("http server starting", "addr", a.cfg.HTTP.Addr)

	g.Go(func() error {
		err := a.srv.ListenAndServe()
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		a.log.Info("http server shutting down")
		_ = a.srv.Shutdown(shutdownCtx)
		return nil
	})

	err := g.Wait()
	_ = a.Close(context.Background())
	return err
}

func (a *App) Close(ctx context.Context) error {
	if a.rdb != nil {
		return a.rdb.Close()
	}
	return nil
}
