package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/services"
)

// createFineTuningJobHandler handles POST /api/v1/finetuning.
func (s *Server) createFineTuningJobHandler(c *gin.Context) {
	var req createFineTuningJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := s.finetuning.CreateJob(c.Request.Context(), services.CreateFineTuningJobRequest{
		Name:            req.Name,
		BaseModel:       req.BaseModel,
		DatasetInfo:     req.DatasetInfo,
		Hyperparameters: req.Hyperparameters,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// listFineTuningJobsHandler handles GET /api/v1/finetuning.
func (s *Server) listFineTuningJobsHandler(c *gin.Context) {
	jobs, err := s.finetuning.ListJobs(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// getFineTuningJobHandler handles GET /api/v1/finetuning/:id.
func (s *Server) getFineTuningJobHandler(c *gin.Context) {
	job, err := s.finetuning.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// transitionFineTuningJobHandler handles POST /api/v1/finetuning/:id/transition.
func (s *Server) transitionFineTuningJobHandler(c *gin.Context) {
	var req transitionJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := s.finetuning.TransitionJob(c.Request.Context(), c.Param("id"),
		domain.FineTuningStatus(req.Status), req.Detail)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// retryFineTuningJobHandler handles POST /api/v1/finetuning/:id/retry.
func (s *Server) retryFineTuningJobHandler(c *gin.Context) {
	job, err := s.finetuning.RetryJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// recordEvaluationHandler handles POST /api/v1/finetuning/:id/evaluation.
func (s *Server) recordEvaluationHandler(c *gin.Context) {
	var req recordEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := s.finetuning.RecordEvaluation(c.Request.Context(), c.Param("id"), req.Evaluation)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
