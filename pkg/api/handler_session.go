package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/services"
)

// createSessionHandler handles POST /api/v1/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.sessions.CreateSession(c.Request.Context(), services.CreateSessionRequest{
		Title:              req.Title,
		Description:        req.Description,
		SessionType:        req.SessionType,
		Priority:           req.Priority,
		ParentID:           req.ParentSessionID,
		AgentConfig:        req.AgentConfig,
		ModelConfig:        req.ModelConfig,
		InitialPrompt:      req.InitialPrompt,
		MaxDurationSeconds: req.MaxDurationSeconds,
		CPULimit:           req.CPULimit,
		MemoryLimitMB:      req.MemoryLimitMB,
		Tags:               req.Tags,
		Metadata:           req.Metadata,
		CreatedBy:          req.CreatedBy,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(sess))
}

// getSessionHandler handles GET /api/v1/sessions/:id with optional
// include_metrics and include_checkpoints flags.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := sessionResponse(sess)
	if boolQuery(c, "include_metrics") && sess.MetricsID != nil && *sess.MetricsID != "" {
		if metrics, err := s.client.SessionMetrics.Get(c.Request.Context(), *sess.MetricsID); err == nil {
			resp["metrics"] = metrics
		}
	}
	if boolQuery(c, "include_checkpoints") {
		checkpoints, err := s.checkpoints.ListCheckpoints(c.Request.Context(), sess.ID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		resp["checkpoints"] = checkpoints
	}
	c.JSON(http.StatusOK, resp)
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters := services.SessionFilters{
		Status:      c.Query("status"),
		SessionType: c.Query("session_type"),
		Priority:    c.Query("priority"),
		ParentID:    c.Query("parent_id"),
		Limit:       intQuery(c, "limit", 25),
		Offset:      intQuery(c, "offset", 0),
	}

	list, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	sessions := make([]gin.H, 0, len(list.Sessions))
	for _, sess := range list.Sessions {
		sessions = append(sessions, sessionResponse(sess))
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions":    sessions,
		"total_count": list.TotalCount,
		"limit":       list.Limit,
		"offset":      list.Offset,
	})
}

// searchSessionsHandler handles GET /api/v1/sessions/search.
func (s *Server) searchSessionsHandler(c *gin.Context) {
	query := c.Query("q")
	if len(query) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search query must be at least 3 characters"})
		return
	}

	results, err := s.sessions.SearchSessions(c.Request.Context(), query, intQuery(c, "limit", 25))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	sessions := make([]gin.H, 0, len(results))
	for _, sess := range results {
		sessions = append(sessions, sessionResponse(sess))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// sessionTreeHandler handles GET /api/v1/sessions/:id/tree.
func (s *Server) sessionTreeHandler(c *gin.Context) {
	tree, err := s.sessions.GetSessionTree(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, treeResponse(tree, intQuery(c, "max_depth", services.MaxTreeDepth)))
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id (soft delete).
func (s *Server) deleteSessionHandler(c *gin.Context) {
	if err := s.sessions.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// startSessionHandler handles POST /api/v1/sessions/:id/start. Manual start
// moves a pending session into the queue ahead of worker polling.
func (s *Server) startSessionHandler(c *gin.Context) {
	sess, err := s.sessions.TransitionStatus(c.Request.Context(), c.Param("id"), domain.SessionQueued, "started via API")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// completeSessionHandler handles POST /api/v1/sessions/:id/complete.
func (s *Server) completeSessionHandler(c *gin.Context) {
	var req completeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.sessions.CompleteSession(c.Request.Context(), c.Param("id"), services.CompletionResult{
		SuccessRate: req.SuccessRate,
		Confidence:  req.Confidence,
		TotalTokens: req.TotalTokens,
		CostUSD:     req.CostUSD,
		Result:      req.Result,
		Warnings:    req.Warnings,
		Partial:     req.Partial,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// failSessionHandler handles POST /api/v1/sessions/:id/fail.
func (s *Server) failSessionHandler(c *gin.Context) {
	var req failSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.sessions.FailSession(c.Request.Context(), c.Param("id"), services.FailureInfo{
		Type:      req.Type,
		Message:   req.Message,
		Source:    req.Source,
		AgentID:   req.AgentID,
		Retryable: req.Retryable,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// retrySessionHandler handles POST /api/v1/sessions/:id/retry.
func (s *Server) retrySessionHandler(c *gin.Context) {
	sess, err := s.sessions.RetrySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel. The local
// runner is interrupted first so the execution lock frees up; the DB cancel
// then races the worker's own settle, and losing that race still means the
// session stopped.
func (s *Server) cancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if s.pool != nil {
		s.pool.CancelSession(sessionID)
	}

	sess, err := s.sessions.CancelSession(c.Request.Context(), sessionID, "cancelled via API")
	if err != nil {
		var transErr *services.TransitionError
		if errors.As(err, &transErr) {
			if settled, getErr := s.sessions.GetSession(c.Request.Context(), sessionID); getErr == nil {
				status := domain.SessionStatus(settled.Status)
				if status == domain.SessionCancelled || status == domain.SessionStopped {
					c.JSON(http.StatusOK, sessionResponse(settled))
					return
				}
			}
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// pauseSessionHandler handles POST /api/v1/sessions/:id/pause.
func (s *Server) pauseSessionHandler(c *gin.Context) {
	sess, err := s.sessions.PauseSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// resumeSessionHandler handles POST /api/v1/sessions/:id/resume.
func (s *Server) resumeSessionHandler(c *gin.Context) {
	sess, err := s.sessions.ResumeSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// monitorHandler handles GET /api/v1/sessions/monitor: active count, at-risk
// list, and aggregate registry statistics.
func (s *Server) monitorHandler(c *gin.Context) {
	running, err := s.sessions.RunningSessions(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	now := time.Now()
	atRisk := make([]gin.H, 0)
	for _, sess := range running {
		startedAt := sess.StatusUpdatedAt
		if sess.MetricsID != nil && *sess.MetricsID != "" {
			if metrics, err := s.client.SessionMetrics.Get(c.Request.Context(), *sess.MetricsID); err == nil && metrics.StartedAt != nil {
				startedAt = *metrics.StartedAt
			}
		}
		budget := time.Duration(sess.MaxDurationSeconds) * time.Second
		remaining := budget - now.Sub(startedAt)
		if remaining < 5*time.Minute {
			atRisk = append(atRisk, gin.H{
				"session_id":        sess.ID,
				"title":             sess.Title,
				"remaining_seconds": int(remaining.Seconds()),
			})
		}
	}

	resp := gin.H{
		"active_count": len(running),
		"at_risk":      atRisk,
	}
	if s.registry != nil {
		resp["agent_statistics"] = s.registry.Statistics()
	}
	c.JSON(http.StatusOK, resp)
}

func boolQuery(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

func intQuery(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v >= 0 {
		return v
	}
	return def
}
