package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addCheckpointHandler handles POST /api/v1/sessions/:id/checkpoints.
func (s *Server) addCheckpointHandler(c *gin.Context) {
	var req addCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cp, err := s.checkpoints.AddCheckpoint(c.Request.Context(), c.Param("id"), req.Name, req.Data)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cp)
}

// listCheckpointsHandler handles GET /api/v1/sessions/:id/checkpoints with an
// optional latest=true flag.
func (s *Server) listCheckpointsHandler(c *gin.Context) {
	if boolQuery(c, "latest") {
		cp, err := s.checkpoints.LatestCheckpoint(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cp)
		return
	}

	checkpoints, err := s.checkpoints.ListCheckpoints(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkpoints": checkpoints, "count": len(checkpoints)})
}
