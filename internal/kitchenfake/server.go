package kitchenfake

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/kitchenkeeper/internal/kitchenfake/config"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
)

// Options configure the API handler.
type Options struct {
	SecretKey     []byte
	TokenValidity time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost. Tests use bcrypt.MinCost.
	BcryptCost int
}

// NewHandler returns the API router. All routes live under /api.
func NewHandler(store *Store, opts Options, log logging.Logger) http.Handler {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.TokenValidity == 0 {
		opts.TokenValidity = time.Hour
	}
	h := &handler{
		store:      store,
		secret:     opts.SecretKey,
		validity:   opts.TokenValidity,
		bcryptCost: opts.BcryptCost,
		log:        log,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(log))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(h.secret))

			r.Get("/auth/me", h.me)

			r.Get("/recipes", h.listRecipes)
			r.Post("/recipes", h.createRecipe)
			r.Get("/recipes/{id}", h.getRecipe)
			r.Patch("/recipes/{id}", h.updateRecipe)
			r.Delete("/recipes/{id}", h.deleteRecipe)

			r.Get("/pantry", h.listPantry)
			r.Post("/pantry", h.createPantryItem)
			r.Patch("/pantry/{id}", h.updatePantryItem)
			r.Delete("/pantry/{id}", h.deletePantryItem)
		})
	})
	return r
}

// Server runs the fake API over HTTP.
type Server struct {
	cfg   *config.Config
	store *Store
	log   logging.Logger
}

func NewServer(cfg *config.Config, log logging.Logger) (*Server, error) {
	store := NewStore()
	if cfg.Seed {
		if err := Seed(store, time.Now(), bcrypt.DefaultCost); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return &Server{cfg: cfg, store: store, log: log}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr: s.cfg.ListenAddr,
		Handler: NewHandler(s.store, Options{
			SecretKey:     []byte(s.cfg.SecretKey),
			TokenValidity: s.cfg.TokenValidity,
		}, s.log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "server starting", "addr", s.cfg.ListenAddr, "seed", s.cfg.Seed)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		s.log.Info(context.Background(), "shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.log.Info(shutdownCtx, "server stopped gracefully")
	}
	return nil
}
