package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/pkg/decompose"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/pkg/taskgraph"
)

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	create := services.CreateTaskRequest{
		SessionID:            req.SessionID,
		ParentTaskID:         req.ParentTaskID,
		Title:                req.Title,
		Description:          req.Description,
		Priority:             req.Priority,
		RequiredCapabilities: req.RequiredCapabilities,
	}
	if req.Estimate != nil {
		create.Estimate = &domain.Estimate{
			OptimisticHours:  req.Estimate.OptimisticHours,
			LikelyHours:      req.Estimate.LikelyHours,
			PessimisticHours: req.Estimate.PessimisticHours,
			Confidence:       req.Estimate.Confidence,
			Source:           domain.EstimateManual,
		}
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), create)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taskResponse(task))
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	task, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskResponse(task))
}

// listTasksHandler handles GET /api/v1/sessions/:id/tasks.
func (s *Server) listTasksHandler(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": taskListResponse(tasks)})
}

// readyTasksHandler handles GET /api/v1/sessions/:id/tasks/ready.
func (s *Server) readyTasksHandler(c *gin.Context) {
	tasks, err := s.tasks.ReadyTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": taskListResponse(tasks)})
}

// taskStatusHandler handles POST /api/v1/tasks/:id/status.
func (s *Server) taskStatusHandler(c *gin.Context) {
	var req taskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.tasks.UpdateTaskStatus(c.Request.Context(), c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskResponse(task))
}

// completeTaskHandler handles POST /api/v1/tasks/:id/complete.
func (s *Server) completeTaskHandler(c *gin.Context) {
	var req completeTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.tasks.CompleteTask(c.Request.Context(), c.Param("id"), req.Result, req.Artifacts)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskResponse(task))
}

// failTaskHandler handles POST /api/v1/tasks/:id/fail.
func (s *Server) failTaskHandler(c *gin.Context) {
	var req failTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.tasks.FailTask(c.Request.Context(), c.Param("id"), req.Error)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskResponse(task))
}

// assignTaskHandler handles POST /api/v1/tasks/:id/assign. The agent must
// cover the task's required capabilities.
func (s *Server) assignTaskHandler(c *gin.Context) {
	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := s.registry.Get(req.AgentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	task, err := s.tasks.AssignTask(c.Request.Context(), c.Param("id"), agent)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskResponse(task))
}

// decomposeTaskHandler handles POST /api/v1/tasks/:id/decompose.
func (s *Server) decomposeTaskHandler(c *gin.Context) {
	var req decomposeTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := decompose.DefaultOptions()
	if req.Strategy != "" {
		opts.Strategy = decompose.Strategy(req.Strategy)
	}
	if req.MaxDepth > 0 {
		opts.MaxDepth = req.MaxDepth
	}
	if req.TargetComplexityHours > 0 {
		opts.TargetComplexityHours = req.TargetComplexityHours
	}

	children, err := s.tasks.DecomposeTask(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": taskListResponse(children)})
}

// addDependencyHandler handles POST /api/v1/tasks/:id/dependencies.
func (s *Server) addDependencyHandler(c *gin.Context) {
	var req addDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	depType := taskgraph.FinishToStart
	if req.Type != "" {
		depType = taskgraph.DependencyType(req.Type)
	}

	if err := s.tasks.AddDependency(c.Request.Context(), c.Param("id"), req.DependsOnID, depType); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeDependencyHandler handles DELETE /api/v1/tasks/:id/dependencies/:dep.
func (s *Server) removeDependencyHandler(c *gin.Context) {
	if err := s.tasks.RemoveDependency(c.Request.Context(), c.Param("id"), c.Param("dep")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
