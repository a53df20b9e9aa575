// Package server provides the HTTP REST API for the matching service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mreyes/campus-match/internal/config"
	"github.com/mreyes/campus-match/internal/db"
	"github.com/mreyes/campus-match/internal/matching"
	"github.com/mreyes/campus-match/internal/server/middleware"
	"github.com/mreyes/campus-match/internal/types"
)

// Store is the persistence surface the handlers and the matching engine need.
// *db.DB satisfies it; tests substitute an in-memory implementation.
type Store interface {
	GetCandidate(ctx context.Context, id string) (*types.Candidate, error)
	ListEligible(ctx context.Context) ([]types.Candidate, error)

	GetRequisition(ctx context.Context, id uuid.UUID) (*types.Requisition, error)
	SetMatchedCount(ctx context.Context, id uuid.UUID, count int) error

	MatchExists(ctx context.Context, requisitionID uuid.UUID, candidateID string) (bool, error)
	InsertMatch(ctx context.Context, rec *types.MatchRecord) (bool, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchRecord, error)
	ListMatches(ctx context.Context, requisitionID uuid.UUID, opts db.ListMatchesOptions) ([]types.MatchRecord, error)
	CountMatches(ctx context.Context, requisitionID uuid.UUID, minPercentage float64) (int, error)
	MarkViewed(ctx context.Context, id uuid.UUID) error
	DeleteMatches(ctx context.Context, requisitionID uuid.UUID) (int64, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      Store
	database   *db.DB
	evaluator  *matching.Evaluator
	runner     *matching.Runner
	jwtService *JWTService
	logger     *zap.Logger
}

// New creates a server instance, connecting to the database and applying the
// schema.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	database.SetEligiblePoolCap(cfg.EligiblePoolCap)

	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		database.Close()
		return nil, err
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := newServer(database, weights, NewJWTService(jwtConfig), logger, cfg.Workers, cfg.Port)
	s.database = database
	return s, nil
}

// newServer wires the handlers, engine and router around a store. Tests use
// it directly with an in-memory store.
func newServer(store Store, weights matching.Weights, jwtService *JWTService, logger *zap.Logger, workers, port int) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	evaluator := matching.NewEvaluator(store, store, weights)
	s := &Server{
		store:      store,
		evaluator:  evaluator,
		runner:     matching.NewRunner(evaluator, store, store, store, logger, workers),
		jwtService: jwtService,
		logger:     logger,
	}

	auth := middleware.Auth(jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.Handle("POST /matching/evaluate", auth(http.HandlerFunc(s.handleEvaluate)))
	mux.Handle("POST /requisitions/{id}/matching/run", auth(http.HandlerFunc(s.handleRunMatching)))
	mux.Handle("GET /requisitions/{id}/matches", auth(http.HandlerFunc(s.handleListMatches)))
	mux.Handle("GET /requisitions/{id}/matches/{match_id}/radar", auth(http.HandlerFunc(s.handleMatchRadar)))
	mux.Handle("DELETE /requisitions/{id}/matches", auth(http.HandlerFunc(s.handleDeleteMatches)))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // bulk runs may take a while
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.database != nil {
		s.database.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// domainError maps a matching error to its HTTP status. Internal errors are
// logged and masked.
func (s *Server) domainError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("internal error", zap.Error(err))
		s.errorResponse(w, status, "Internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

func parseQueryFloat(r *http.Request, key string, defaultValue float64) (float64, error) {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(valStr, 64)
}
