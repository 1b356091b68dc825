// Package api is the thin HTTP layer over the mission control plane: REST
// endpoints for mission lifecycle and reports, a WebSocket endpoint for the
// realtime bus, and health endpoints for the worker pool.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-research/maestro/pkg/database"
	"github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/queue"
	"github.com/maestro-research/maestro/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	missionService *services.MissionService
	reportService  *services.ReportService
	db             *database.Client
	connManager    *events.ConnectionManager
	pool           *queue.WorkerPool

	dashboardURL     string
	allowedWSOrigins []string

	httpServer *http.Server
}

// Deps bundles the server's collaborators.
type Deps struct {
	MissionService *services.MissionService
	ReportService  *services.ReportService
	DB             *database.Client
	ConnManager    *events.ConnectionManager
	Pool           *queue.WorkerPool

	DashboardURL     string
	AllowedWSOrigins []string
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	return &Server{
		missionService:   deps.MissionService,
		reportService:    deps.ReportService,
		db:               deps.DB,
		connManager:      deps.ConnManager,
		pool:             deps.Pool,
		dashboardURL:     deps.DashboardURL,
		allowedWSOrigins: deps.AllowedWSOrigins,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(securityHeaders())
	r.Use(corsMiddleware(s.dashboardURL))

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/system/health", s.systemHealthHandler)

		missions := v1.Group("/missions")
		{
			missions.POST("", s.createMissionHandler)
			missions.GET("", s.listMissionsHandler)
			missions.GET("/:id", s.getMissionHandler)
			missions.POST("/:id/pause", s.pauseMissionHandler)
			missions.POST("/:id/resume", s.resumeMissionHandler)
			missions.POST("/:id/stop", s.stopMissionHandler)
			missions.GET("/:id/stats", s.getStatsHandler)
			missions.GET("/:id/logs", s.getLogsHandler)
			missions.GET("/:id/report", s.getCurrentReportHandler)
			missions.GET("/:id/report/versions", s.listReportVersionsHandler)
			missions.GET("/:id/report/versions/:version", s.getReportVersionHandler)
			missions.POST("/:id/report/current", s.setCurrentReportHandler)
		}
	}

	return r
}

// Start begins serving on the given address. Blocks until the listener
// fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
