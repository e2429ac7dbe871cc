package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/router"
	"github.com/maestro-hq/maestro/pkg/tenancy"
)

// AgentTokenHeader carries the shared secret handed out at external
// registration time.
const AgentTokenHeader = "X-Agent-Token"

// registerAgentHandler handles POST /api/v1/agents for internal agents.
func (s *Server) registerAgentHandler(c *gin.Context) {
	var req registerAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID, err := tenancy.RequireTenant(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	agent := &registry.Agent{
		ID:                 req.ID,
		TenantID:           tenantID,
		Name:               req.Name,
		Type:               domain.AgentType(req.Type),
		Capabilities:       toCapabilities(req.Capabilities),
		MaxConcurrentTasks: req.MaxConcurrentTasks,
		Metadata:           req.Metadata,
	}
	if agent.ID == "" {
		agent.ID = uuid.NewString()
	}

	if err := s.registry.Register(c.Request.Context(), agent); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agentResponse(agent))
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *gin.Context) {
	agents := s.registry.All()
	out := make([]gin.H, 0, len(agents))
	for _, a := range agents {
		out = append(out, agentResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"agents": out, "count": len(out)})
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	agent, err := s.registry.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agentResponse(agent))
}

// deregisterAgentHandler handles DELETE /api/v1/agents/:id.
func (s *Server) deregisterAgentHandler(c *gin.Context) {
	if err := s.registry.Deregister(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// agentHeartbeatHandler handles POST /api/v1/agents/:id/heartbeat.
func (s *Server) agentHeartbeatHandler(c *gin.Context) {
	if err := s.registry.UpdateHeartbeat(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// agentStatisticsHandler handles GET /api/v1/agents/statistics.
func (s *Server) agentStatisticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.Statistics())
}

// routeHandler handles POST /api/v1/agents/route: score the registry against
// the request and return the winner plus alternates.
func (s *Server) routeHandler(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.router == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "routing is not available"})
		return
	}

	decision, err := s.router.Route(router.Request{
		RequiredCapabilities: toCapabilities(req.RequiredCapabilities),
		PreferredType:        domain.AgentType(req.PreferredType),
		PreferredIDs:         req.PreferredIDs,
		MinTier:              domain.PerformanceTier(req.MinTier),
		EstimatedComplexity:  req.EstimatedComplexity,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	alternates := make([]gin.H, 0, len(decision.Alternates))
	for _, alt := range decision.Alternates {
		alternates = append(alternates, gin.H{"agent": agentResponse(alt.Agent), "score": alt.Score})
	}
	c.JSON(http.StatusOK, gin.H{
		"agent":      agentResponse(decision.Agent),
		"score":      decision.Score,
		"alternates": alternates,
		"reason":     decision.Reason,
	})
}

// registerExternalAgentHandler handles POST /api/v1/agents/external/register.
// External agents authenticate with the returned token, not a tenant header.
func (s *Server) registerExternalAgentHandler(c *gin.Context) {
	var req externalRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := tenancy.ParseTenantID(req.TenantID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant_id must be a UUID"})
		return
	}

	maxTasks := req.MaxConcurrentTasks
	if maxTasks == 0 {
		maxTasks = 1
	}
	token := uuid.NewString()
	agent := &registry.Agent{
		ID:                 uuid.NewString(),
		TenantID:           req.TenantID,
		Name:               req.Name,
		Type:               domain.AgentType(req.Type),
		Capabilities:       toCapabilities(req.Capabilities),
		MaxConcurrentTasks: maxTasks,
		Metadata: map[string]string{
			registry.MetaIsExternal:  "true",
			registry.MetaEndpointURL: req.EndpointURL,
			registry.MetaAuthToken:   token,
		},
	}

	if err := s.registry.Register(c.Request.Context(), agent); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"agent_id": agent.ID, "auth_token": token})
}

// externalHeartbeatHandler handles POST /api/v1/agents/external/:id/heartbeat.
func (s *Server) externalHeartbeatHandler(c *gin.Context) {
	var req externalHeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := s.registry.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if agent.Metadata[registry.MetaAuthToken] == "" ||
		c.GetHeader(AgentTokenHeader) != agent.Metadata[registry.MetaAuthToken] {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid agent token"})
		return
	}

	if err := s.registry.UpdateHeartbeat(c.Request.Context(), agent.ID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toCapabilities(names []string) []domain.Capability {
	caps := make([]domain.Capability, 0, len(names))
	for _, name := range names {
		caps = append(caps, domain.Capability(name))
	}
	return caps
}
