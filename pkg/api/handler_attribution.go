package api

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewcast/crewcast/pkg/services"
)

// ListAttributions handles GET /api/v1/pipelines/:id/attributions.
func (s *Server) ListAttributions(c *gin.Context) {
	attrs, err := s.attributions.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attributions": attrs})
}

// Distribution handles GET /api/v1/pipelines/:id/distribution?total=N.
// Shares are rendered as decimal strings: totals routinely exceed int64.
func (s *Server) Distribution(c *gin.Context) {
	raw := c.Query("total")
	if raw == "" {
		writeError(c, services.NewValidationError("total", "required"))
		return
	}
	total, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		writeError(c, services.NewValidationError("total", "must be a decimal integer"))
		return
	}

	attrs, err := s.attributions.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	shares, err := s.attributions.DistributeRecords(total, attrs)
	if err != nil {
		writeError(c, err)
		return
	}

	rendered := make(map[string]string, len(shares))
	for agent, amount := range shares {
		rendered[agent] = amount.String()
	}
	c.JSON(http.StatusOK, gin.H{"total": total.String(), "shares": rendered})
}
