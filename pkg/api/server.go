// Package api is the gin HTTP surface of the orchestrator: sessions, tasks,
// checkpoints, stored contexts, fine-tuning jobs, agent registration, and the
// External Agent Protocol endpoints.
package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/database"
	"github.com/maestro-hq/maestro/pkg/queue"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/router"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/pkg/version"
)

// Server bundles the service layer behind the HTTP handlers.
type Server struct {
	client      *ent.Client
	db          *sql.DB
	tenants     *services.TenantService
	sessions    *services.SessionService
	checkpoints *services.CheckpointService
	tasks       *services.TaskService
	contexts    *services.ContextService
	finetuning  *services.FineTuningService
	registry    *registry.Registry
	router      *router.Router
	pool        *queue.WorkerPool
	logger      *slog.Logger
}

// Deps are the collaborators the server needs. pool may be nil (replica
// without workers); router may be nil (routing endpoints disabled).
type Deps struct {
	Client      *ent.Client
	DB          *sql.DB
	Tenants     *services.TenantService
	Sessions    *services.SessionService
	Checkpoints *services.CheckpointService
	Tasks       *services.TaskService
	Contexts    *services.ContextService
	FineTuning  *services.FineTuningService
	Registry    *registry.Registry
	Router      *router.Router
	Pool        *queue.WorkerPool
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		client:      deps.Client,
		db:          deps.DB,
		tenants:     deps.Tenants,
		sessions:    deps.Sessions,
		checkpoints: deps.Checkpoints,
		tasks:       deps.Tasks,
		contexts:    deps.Contexts,
		finetuning:  deps.FineTuning,
		registry:    deps.Registry,
		router:      deps.Router,
		pool:        deps.Pool,
		logger:      slog.With("component", "api"),
	}
}

// Routes builds the gin engine with all routes registered.
func (s *Server) Routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), securityHeaders(), requestLogger(s.logger))

	engine.GET("/health", s.healthHandler)

	admin := engine.Group("/admin/tenants")
	{
		admin.POST("", s.createTenantHandler)
		admin.GET("", s.listTenantsHandler)
		admin.GET("/:id", s.getTenantHandler)
		admin.PUT("/:id/limits", s.updateTenantLimitsHandler)
	}

	// External Agent Protocol endpoints authenticate by agent token, not
	// by tenant header.
	eap := engine.Group("/api/v1/agents/external")
	{
		eap.POST("/register", s.registerExternalAgentHandler)
		eap.POST("/:id/heartbeat", s.externalHeartbeatHandler)
	}

	v1 := engine.Group("/api/v1", tenantMiddleware())
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", s.createSessionHandler)
			sessions.GET("", s.listSessionsHandler)
			sessions.GET("/search", s.searchSessionsHandler)
			sessions.GET("/monitor", s.monitorHandler)
			sessions.GET("/:id", s.getSessionHandler)
			sessions.DELETE("/:id", s.deleteSessionHandler)
			sessions.GET("/:id/tree", s.sessionTreeHandler)
			sessions.POST("/:id/start", s.startSessionHandler)
			sessions.POST("/:id/complete", s.completeSessionHandler)
			sessions.POST("/:id/fail", s.failSessionHandler)
			sessions.POST("/:id/retry", s.retrySessionHandler)
			sessions.POST("/:id/cancel", s.cancelSessionHandler)
			sessions.POST("/:id/pause", s.pauseSessionHandler)
			sessions.POST("/:id/resume", s.resumeSessionHandler)
			sessions.POST("/:id/checkpoints", s.addCheckpointHandler)
			sessions.GET("/:id/checkpoints", s.listCheckpointsHandler)
			sessions.GET("/:id/tasks", s.listTasksHandler)
			sessions.GET("/:id/tasks/ready", s.readyTasksHandler)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.POST("", s.createTaskHandler)
			tasks.GET("/:id", s.getTaskHandler)
			tasks.POST("/:id/status", s.taskStatusHandler)
			tasks.POST("/:id/complete", s.completeTaskHandler)
			tasks.POST("/:id/fail", s.failTaskHandler)
			tasks.POST("/:id/assign", s.assignTaskHandler)
			tasks.POST("/:id/decompose", s.decomposeTaskHandler)
			tasks.POST("/:id/dependencies", s.addDependencyHandler)
			tasks.DELETE("/:id/dependencies/:dep", s.removeDependencyHandler)
		}

		agents := v1.Group("/agents")
		{
			agents.POST("", s.registerAgentHandler)
			agents.GET("", s.listAgentsHandler)
			agents.GET("/statistics", s.agentStatisticsHandler)
			agents.POST("/route", s.routeHandler)
			agents.GET("/:id", s.getAgentHandler)
			agents.DELETE("/:id", s.deregisterAgentHandler)
			agents.POST("/:id/heartbeat", s.agentHeartbeatHandler)
		}

		contexts := v1.Group("/contexts")
		{
			contexts.POST("", s.createContextHandler)
			contexts.GET("", s.listContextsHandler)
			contexts.GET("/:id", s.getContextHandler)
			contexts.DELETE("/:id", s.deleteContextHandler)
			contexts.POST("/:id/values", s.setContextValueHandler)
			contexts.DELETE("/:id/values", s.deleteContextValueHandler)
			contexts.POST("/:id/merge", s.mergeContextsHandler)
		}

		jobs := v1.Group("/finetuning")
		{
			jobs.POST("", s.createFineTuningJobHandler)
			jobs.GET("", s.listFineTuningJobsHandler)
			jobs.GET("/:id", s.getFineTuningJobHandler)
			jobs.POST("/:id/transition", s.transitionFineTuningJobHandler)
			jobs.POST("/:id/retry", s.retryFineTuningJobHandler)
			jobs.POST("/:id/evaluation", s.recordEvaluationHandler)
		}
	}

	return engine
}

// healthHandler reports process, database, and pool health. Health is
// unauthenticated.
func (s *Server) healthHandler(c *gin.Context) {
	resp := gin.H{"status": "healthy", "version": version.Full()}
	code := http.StatusOK

	if s.db != nil {
		dbHealth, err := database.Health(c.Request.Context(), s.db)
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}
	if s.pool != nil {
		pool := s.pool.Health()
		resp["pool"] = pool
		if !pool.IsHealthy {
			resp["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, resp)
}
