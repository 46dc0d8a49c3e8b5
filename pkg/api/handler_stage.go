package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/services"
)

// ReadySet handles GET /api/v1/stages/ready.
// The optional stages query param is a comma-separated list of stage names.
func (s *Server) ReadySet(c *gin.Context) {
	var filter models.ReadySetFilter
	if v := c.Query("stages"); v != "" {
		for _, name := range strings.Split(v, ",") {
			filter.StageNames = append(filter.StageNames, registry.StageName(strings.TrimSpace(name)))
		}
	}

	ready, err := s.pipelines.ReadySet(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": ready})
}

// ClaimStage handles POST /api/v1/pipelines/:id/stages/:name/claim.
func (s *Server) ClaimStage(c *gin.Context) {
	var req models.ClaimStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("body", err.Error()))
		return
	}

	stage, err := s.pipelines.ClaimStage(c.Request.Context(),
		c.Param("id"), registry.StageName(c.Param("name")), req.AgentID, req.AgentName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

// ClaimStageByID handles POST /api/v1/stages/:id/claim.
func (s *Server) ClaimStageByID(c *gin.Context) {
	var req models.ClaimStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("body", err.Error()))
		return
	}

	stage, err := s.pipelines.ClaimStageByID(c.Request.Context(), c.Param("id"), req.AgentID, req.AgentName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

// StartStage handles POST /api/v1/stages/:id/start.
func (s *Server) StartStage(c *gin.Context) {
	stage, err := s.pipelines.StartStage(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

// CompleteStage handles POST /api/v1/stages/:id/complete.
func (s *Server) CompleteStage(c *gin.Context) {
	var req models.CompleteStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("body", err.Error()))
		return
	}

	result, err := s.pipelines.CompleteStage(c.Request.Context(), c.Param("id"), req.Output, req.Artifacts)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FailStage handles POST /api/v1/stages/:id/fail.
func (s *Server) FailStage(c *gin.Context) {
	var req models.FailStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("body", err.Error()))
		return
	}
	if req.Error == "" {
		writeError(c, services.NewValidationError("error", "required"))
		return
	}

	result, err := s.pipelines.FailStage(c.Request.Context(), c.Param("id"), req.Error)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
