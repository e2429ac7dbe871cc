package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/pkg/contextstore"
	"github.com/maestro-hq/maestro/pkg/services"
)

// createContextHandler handles POST /api/v1/contexts.
func (s *Server) createContextHandler(c *gin.Context) {
	var req createContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec, err := s.contexts.CreateContext(c.Request.Context(), services.CreateContextRequest{
		Scope:     contextstore.Scope(req.Scope),
		SessionID: req.SessionID,
		AgentID:   req.AgentID,
		Data:      req.Data,
		CreatedBy: req.CreatedBy,
		TTL:       time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ec)
}

// listContextsHandler handles GET /api/v1/contexts with optional scope and
// session_id filters.
func (s *Server) listContextsHandler(c *gin.Context) {
	contexts, err := s.contexts.ListContexts(c.Request.Context(),
		contextstore.Scope(c.Query("scope")), c.Query("session_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contexts": contexts, "count": len(contexts)})
}

// getContextHandler handles GET /api/v1/contexts/:id.
func (s *Server) getContextHandler(c *gin.Context) {
	ec, err := s.contexts.GetContext(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ec)
}

// deleteContextHandler handles DELETE /api/v1/contexts/:id.
func (s *Server) deleteContextHandler(c *gin.Context) {
	if err := s.contexts.DeleteContext(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// setContextValueHandler handles POST /api/v1/contexts/:id/values.
func (s *Server) setContextValueHandler(c *gin.Context) {
	var req setContextValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec, err := s.contexts.SetValue(c.Request.Context(), c.Param("id"), req.Path, req.Value)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ec)
}

// deleteContextValueHandler handles DELETE /api/v1/contexts/:id/values.
func (s *Server) deleteContextValueHandler(c *gin.Context) {
	var req deleteContextValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec, err := s.contexts.DeleteValue(c.Request.Context(), c.Param("id"), req.Path)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ec)
}

// mergeContextsHandler handles POST /api/v1/contexts/:id/merge. The path id
// is the merge target.
func (s *Server) mergeContextsHandler(c *gin.Context) {
	var req mergeContextsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy := contextstore.DeepMerge
	if req.Strategy != "" {
		strategy = contextstore.MergeStrategy(req.Strategy)
	}

	result, err := s.contexts.MergeContexts(c.Request.Context(), c.Param("id"), req.SourceID, strategy)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
