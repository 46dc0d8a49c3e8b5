package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/services"
)

// CreatePipeline handles POST /api/v1/pipelines.
func (s *Server) CreatePipeline(c *gin.Context) {
	var req models.CreatePipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("body", err.Error()))
		return
	}

	p, err := s.pipelines.CreatePipeline(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// StartPipeline handles POST /api/v1/pipelines/:id/start.
func (s *Server) StartPipeline(c *gin.Context) {
	p, err := s.pipelines.StartPipeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetPipeline handles GET /api/v1/pipelines/:id.
func (s *Server) GetPipeline(c *gin.Context) {
	p, err := s.pipelines.GetPipeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPipelines handles GET /api/v1/pipelines.
// Query params: status, limit, offset.
func (s *Server) ListPipelines(c *gin.Context) {
	filters := models.PipelineFilters{Status: c.Query("status")}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, services.NewValidationError("limit", "must be an integer"))
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(c, services.NewValidationError("offset", "must be a non-negative integer"))
			return
		}
		filters.Offset = n
	}

	resp, err := s.pipelines.ListPipelines(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
