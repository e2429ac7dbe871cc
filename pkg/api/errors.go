package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/router"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/pkg/taskgraph"
	"github.com/maestro-hq/maestro/pkg/tenancy"
)

// writeServiceError maps service-layer errors to HTTP error responses.
func writeServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error(), "field": validErr.Field})
		return
	}
	var regValidErr *registry.ValidationError
	if errors.As(err, &regValidErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": regValidErr.Error(), "field": regValidErr.Field})
		return
	}
	var capErr *services.CapabilityError
	if errors.As(err, &capErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": capErr.Error()})
		return
	}
	if errors.Is(err, tenancy.ErrNoTenant) || errors.Is(err, tenancy.ErrMalformedTenant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, services.ErrNotFound) || errors.Is(err, registry.ErrAgentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	var quotaErr *services.QuotaError
	if errors.As(err, &quotaErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": quotaErr.Error()})
		return
	}

	var transErr *services.TransitionError
	if errors.As(err, &transErr) {
		c.JSON(http.StatusConflict, gin.H{"error": transErr.Error()})
		return
	}
	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":            conflictErr.Error(),
			"expected_version": conflictErr.ExpectedVersion,
			"actual_version":   conflictErr.ActualVersion,
		})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) || errors.Is(err, registry.ErrAgentExists) ||
		errors.Is(err, taskgraph.ErrDependencyCycle) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, router.ErrNoSuitableAgent) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
