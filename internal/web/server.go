package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitos/cointrackr/internal/usecase"
	"go.uber.org/zap"
)

type Server struct {
	router   *http.ServeMux
	server   *http.Server
	store    *usecase.SnapshotStore
	refresh  *usecase.RefreshService
	pageSize int
	logger   *zap.Logger
}

func NewServer(
	port int,
	store *usecase.SnapshotStore,
	refresh *usecase.RefreshService,
	pageSize int,
	logger *zap.Logger,
) *Server {
	if pageSize <= 0 {
		pageSize = usecase.DefaultPageSize
	}
	s := &Server{
		router:   http.NewServeMux(),
		store:    store,
		refresh:  refresh,
		pageSize: pageSize,
		logger:   logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.router,
	}
	return s
}

func (s *Server) routes() {
	// Dashboard
	s.router.HandleFunc("GET /", s.handleDashboard)

	// Market table data
	s.router.HandleFunc("GET /api/markets", s.handleMarketsJSON)

	// Per-asset price chart
	s.router.HandleFunc("GET /api/coins/{id}/chart", s.handleChartJSON)

	// Manual refresh (retry affordance)
	s.router.HandleFunc("POST /api/refresh", s.handleRefresh)

	// Status
	s.router.HandleFunc("GET /status", s.handleStatus)
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
