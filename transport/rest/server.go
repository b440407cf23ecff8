package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type engine interface {
	NewGame(ctx context.Context) (*entity.Analysis, error)
	Analyze(ctx context.Context, position entity.Position) (*entity.Analysis, error)
	MakeTurn(ctx context.Context, position entity.Position, move string) (*entity.Turn, error)
	MakeBotTurn(ctx context.Context, position entity.Position) (*entity.Turn, error)
}

type Server struct {
	logger *slog.Logger
	engine engine
	router chi.Router
}

func New(logger *slog.Logger, engine engine) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		engine: engine,
	}

	router := chi.NewRouter()
	router.Use(server.requestLogger)
	router.Use(middleware.Recoverer)

	router.Get("/ping", server.handlePing)
	router.Route("/v1", func(r chi.Router) {
		r.Get("/games/new", server.handleNewGame)
		r.Post("/analyze", server.handleAnalyze)
		r.Post("/turn", server.handleTurn)
		r.Post("/bot-turn", server.handleBotTurn)
	})

	server.router = router

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}
