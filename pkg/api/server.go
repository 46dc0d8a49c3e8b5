// Package api exposes the orchestrator over HTTP using gin. All domain logic
// lives in the services layer; handlers translate between JSON and service
// calls and map error codes to HTTP statuses.
package api

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/gin-gonic/gin"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/queue"
	"github.com/crewcast/crewcast/pkg/registry"
)

// PipelineScheduler is the slice of the pipeline service the API uses.
type PipelineScheduler interface {
	CreatePipeline(ctx context.Context, req models.CreatePipelineRequest) (*ent.Pipeline, error)
	StartPipeline(ctx context.Context, pipelineID string) (*ent.Pipeline, error)
	GetPipeline(ctx context.Context, pipelineID string) (*ent.Pipeline, error)
	ListPipelines(ctx context.Context, f models.PipelineFilters) (*models.PipelineListResponse, error)
	ReadySet(ctx context.Context, filter models.ReadySetFilter) ([]models.ReadyStage, error)
	ClaimStage(ctx context.Context, pipelineID string, stageName registry.StageName, agentID, agentName string) (*ent.Stage, error)
	ClaimStageByID(ctx context.Context, stageID, agentID, agentName string) (*ent.Stage, error)
	StartStage(ctx context.Context, stageID string) (*ent.Stage, error)
	CompleteStage(ctx context.Context, stageID string, output json.RawMessage, artifacts []string) (*models.StageTransitionResult, error)
	FailStage(ctx context.Context, stageID, errText string) (*models.StageTransitionResult, error)
}

// AttributionEngine is the slice of the attribution service the API uses.
type AttributionEngine interface {
	List(ctx context.Context, pipelineID string) ([]*ent.Attribution, error)
	DistributeRecords(total *big.Int, attrs []*ent.Attribution) (map[string]*big.Int, error)
}

// HealthChecker reports database reachability.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// PoolHealthReporter exposes worker pool health; nil disables the endpoint's
// pool section (API-only deployments).
type PoolHealthReporter interface {
	Health() *queue.PoolHealth
}

// Server wires the HTTP surface to the services layer.
type Server struct {
	pipelines    PipelineScheduler
	attributions AttributionEngine
	db           HealthChecker
	pool         PoolHealthReporter
}

// NewServer creates a new API server. db and pool may be nil.
func NewServer(pipelines PipelineScheduler, attributions AttributionEngine, db HealthChecker, pool PoolHealthReporter) *Server {
	return &Server{
		pipelines:    pipelines,
		attributions: attributions,
		db:           db,
		pool:         pool,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/pipelines", s.CreatePipeline)
		v1.GET("/pipelines", s.ListPipelines)
		v1.GET("/pipelines/:id", s.GetPipeline)
		v1.POST("/pipelines/:id/start", s.StartPipeline)
		v1.POST("/pipelines/:id/stages/:name/claim", s.ClaimStage)
		v1.GET("/pipelines/:id/attributions", s.ListAttributions)
		v1.GET("/pipelines/:id/distribution", s.Distribution)

		v1.GET("/stages/ready", s.ReadySet)
		v1.POST("/stages/:id/claim", s.ClaimStageByID)
		v1.POST("/stages/:id/start", s.StartStage)
		v1.POST("/stages/:id/complete", s.CompleteStage)
		v1.POST("/stages/:id/fail", s.FailStage)

		v1.GET("/queue/health", s.QueueHealth)
	}

	return r
}
