package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/pkg/services"
)

// Tenant administration lives outside the tenant-scoped /api/v1 group.

// createTenantHandler handles POST /admin/tenants.
func (s *Server) createTenantHandler(c *gin.Context) {
	var req createTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := s.tenants.CreateTenant(c.Request.Context(), services.CreateTenantRequest{
		Name:                  req.Name,
		Slug:                  req.Slug,
		MaxConcurrentSessions: req.MaxConcurrentSessions,
		MaxTokensPerMonth:     req.MaxTokensPerMonth,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

// listTenantsHandler handles GET /admin/tenants.
func (s *Server) listTenantsHandler(c *gin.Context) {
	tenants, err := s.tenants.ListTenants(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenants": tenants, "count": len(tenants)})
}

// getTenantHandler handles GET /admin/tenants/:id. A slug lookup is used
// when the id is not a UUID.
func (s *Server) getTenantHandler(c *gin.Context) {
	id := c.Param("id")
	tenant, err := s.tenants.GetTenant(c.Request.Context(), id)
	if err != nil {
		tenant, err = s.tenants.GetTenantBySlug(c.Request.Context(), id)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// updateTenantLimitsHandler handles PUT /admin/tenants/:id/limits.
func (s *Server) updateTenantLimitsHandler(c *gin.Context) {
	var req updateTenantLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	tenant, err := s.tenants.UpdateTenantLimits(c.Request.Context(), c.Param("id"),
		req.MaxConcurrentSessions, req.MaxTokensPerMonth, active)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}
