package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubScheduler returns canned values per call.
type stubScheduler struct {
	pipeline *ent.Pipeline
	stage    *ent.Stage
	result   *models.StageTransitionResult
	ready    []models.ReadyStage
	err      error

	gotFilter models.ReadySetFilter
	gotAgent  string
}

func (s *stubScheduler) CreatePipeline(_ context.Context, req models.CreatePipelineRequest) (*ent.Pipeline, error) {
	if req.Topic == "" {
		return nil, services.NewValidationError("topic", "required")
	}
	return s.pipeline, s.err
}

func (s *stubScheduler) StartPipeline(context.Context, string) (*ent.Pipeline, error) {
	return s.pipeline, s.err
}

func (s *stubScheduler) GetPipeline(context.Context, string) (*ent.Pipeline, error) {
	return s.pipeline, s.err
}

func (s *stubScheduler) ListPipelines(context.Context, models.PipelineFilters) (*models.PipelineListResponse, error) {
	return &models.PipelineListResponse{Pipelines: []*ent.Pipeline{s.pipeline}, TotalCount: 1, Limit: 20}, s.err
}

func (s *stubScheduler) ReadySet(_ context.Context, f models.ReadySetFilter) ([]models.ReadyStage, error) {
	s.gotFilter = f
	return s.ready, s.err
}

func (s *stubScheduler) ClaimStage(_ context.Context, _ string, _ registry.StageName, agentID, _ string) (*ent.Stage, error) {
	s.gotAgent = agentID
	return s.stage, s.err
}

func (s *stubScheduler) ClaimStageByID(_ context.Context, _, agentID, _ string) (*ent.Stage, error) {
	s.gotAgent = agentID
	return s.stage, s.err
}

func (s *stubScheduler) StartStage(context.Context, string) (*ent.Stage, error) {
	return s.stage, s.err
}

func (s *stubScheduler) CompleteStage(context.Context, string, json.RawMessage, []string) (*models.StageTransitionResult, error) {
	return s.result, s.err
}

func (s *stubScheduler) FailStage(context.Context, string, string) (*models.StageTransitionResult, error) {
	return s.result, s.err
}

type stubAttributions struct {
	attrs  []*ent.Attribution
	shares map[string]*big.Int
	err    error
}

func (s *stubAttributions) List(context.Context, string) ([]*ent.Attribution, error) {
	return s.attrs, s.err
}

func (s *stubAttributions) DistributeRecords(*big.Int, []*ent.Attribution) (map[string]*big.Int, error) {
	return s.shares, s.err
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testRouter(sched *stubScheduler, attrs *stubAttributions) *gin.Engine {
	return NewServer(sched, attrs, nil, nil).Router()
}

func TestCreatePipeline(t *testing.T) {
	sched := &stubScheduler{pipeline: &ent.Pipeline{ID: "p1", Topic: "Why cats purr", Status: registry.PipelineDraft}}
	router := testRouter(sched, &stubAttributions{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/pipelines", `{"topic":"Why cats purr"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var p ent.Pipeline
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "p1", p.ID)
}

func TestCreatePipeline_EmptyTopic(t *testing.T) {
	router := testRouter(&stubScheduler{}, &stubAttributions{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/pipelines", `{"topic":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), services.CodeInvalidInput)
}

func TestErrorCodeMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrNotFound, http.StatusNotFound, services.CodeNotFound},
		{fmt.Errorf("not DRAFT: %w", services.ErrInvalidState), http.StatusConflict, services.CodeInvalidState},
		{fmt.Errorf("lost race: %w", services.ErrPreconditionFailed), http.StatusPreconditionFailed, services.CodePreconditionFailed},
		{fmt.Errorf("connection refused"), http.StatusInternalServerError, services.CodeInternal},
	}

	for _, tt := range tests {
		router := testRouter(&stubScheduler{err: tt.err}, &stubAttributions{})
		rec := doRequest(t, router, http.MethodPost, "/api/v1/pipelines/p1/start", "")
		assert.Equal(t, tt.status, rec.Code)
		assert.Contains(t, rec.Body.String(), tt.code)
	}
}

func TestInternalErrorIsMasked(t *testing.T) {
	router := testRouter(&stubScheduler{err: fmt.Errorf("pq: password authentication failed")}, &stubAttributions{})
	rec := doRequest(t, router, http.MethodPost, "/api/v1/pipelines/p1/start", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestClaimStage(t *testing.T) {
	agent := "w1"
	sched := &stubScheduler{stage: &ent.Stage{ID: "s1", Name: registry.StageResearch, Status: registry.StageClaimed, AgentID: &agent}}
	router := testRouter(sched, &stubAttributions{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/pipelines/p1/stages/RESEARCH/claim",
		`{"agent_id":"w1","agent_name":"Worker One"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "w1", sched.gotAgent)

	// The by-id form takes the same request body.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/stages/s1/claim",
		`{"agent_id":"w2","agent_name":"Worker Two"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "w2", sched.gotAgent)
}

func TestReadySet_ParsesStageFilter(t *testing.T) {
	sched := &stubScheduler{}
	router := testRouter(sched, &stubAttributions{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/stages/ready?stages=RESEARCH,%20VOICE", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []registry.StageName{registry.StageResearch, registry.StageVoice}, sched.gotFilter.StageNames)
}

func TestFailStage_RequiresErrorText(t *testing.T) {
	router := testRouter(&stubScheduler{result: &models.StageTransitionResult{}}, &stubAttributions{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/stages/s1/fail", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/stages/s1/fail", `{"error":"llm_timeout"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDistribution_BigTotals(t *testing.T) {
	total, ok := new(big.Int).SetString("1000000000000000000000000", 10) // 10^24
	require.True(t, ok)

	attrs := &stubAttributions{shares: map[string]*big.Int{"X": total}}
	router := testRouter(&stubScheduler{}, attrs)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/pipelines/p1/distribution?total=1000000000000000000000000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total  string            `json:"total"`
		Shares map[string]string `json:"shares"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1000000000000000000000000", resp.Total)
	assert.Equal(t, "1000000000000000000000000", resp.Shares["X"])
}

func TestDistribution_RejectsBadTotal(t *testing.T) {
	router := testRouter(&stubScheduler{}, &stubAttributions{})

	for _, q := range []string{"", "?total=abc", "?total=1.5"} {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/pipelines/p1/distribution"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", q)
	}
}

func TestHealthWithoutDB(t *testing.T) {
	router := testRouter(&stubScheduler{}, &stubAttributions{})
	rec := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
