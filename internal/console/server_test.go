package console

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpclient "github.com/zra-sdk/zra-demo/internal/client/http"
	"github.com/zra-sdk/zra-demo/internal/client/zra"
	"github.com/zra-sdk/zra-demo/internal/client/zra/zratest"
	"github.com/zra-sdk/zra-demo/internal/config"
	"github.com/zra-sdk/zra-demo/internal/metrics"
	"github.com/zra-sdk/zra-demo/internal/render/board"
	"github.com/zra-sdk/zra-demo/internal/workflow"
)

type testConsole struct {
	router *gin.Engine
	srv    *zratest.Server
	engine *workflow.Engine
	board  *board.Board
}

func newTestConsole(t *testing.T, mutate ...func(*config.Config)) *testConsole {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := zratest.NewServer()
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(reg)

	cfg := config.DefaultConfig()
	cfg.Workflow.QuickActionDelay = 10 * time.Millisecond
	for _, m := range mutate {
		m(cfg)
	}

	client := zra.NewClient(srv.URL, httpclient.WithMetricsCollector(collector))
	surface := board.New(0)
	engine := workflow.NewEngineFromConfig(cfg, client, surface, workflow.WithResultRecorder(collector))

	router := gin.New()
	InitializeRoutes(router, Deps{Config: cfg, Engine: engine, Gatherer: reg})

	return &testConsole{router: router, srv: srv, engine: engine, board: surface}
}

func (tc *testConsole) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	return w
}

func decodeWorkflow(t *testing.T, w *httptest.ResponseRecorder) WorkflowResponse {
	t.Helper()
	var resp WorkflowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	tc := newTestConsole(t)
	w := tc.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "zra-demo", resp.Service)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestSubmitWorkflow(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      string
		respond   func(srv *zratest.Server)
		wantCode  int
		wantPhase workflow.Phase
		wantMsg   string
		wantCalls int
	}{
		{
			name: "verify success",
			path: "/api/v1/workflows/verify",
			body: `{"tpin":"123456789"}`,
			respond: func(srv *zratest.Server) {
				srv.Respond(zra.VerifyPath, http.StatusOK, zratest.VerifyBandaOK)
			},
			wantCode:  http.StatusOK,
			wantPhase: workflow.PhaseSuccess,
			wantCalls: 1,
		},
		{
			name: "calculate with numeric income",
			path: "/api/v1/workflows/calculate",
			body: `{"income":25000,"tax_type":"income"}`,
			respond: func(srv *zratest.Server) {
				srv.Respond(zra.CalculateTaxPath, http.StatusOK, zratest.CalculateIncomeOK)
			},
			wantCode:  http.StatusOK,
			wantPhase: workflow.PhaseSuccess,
			wantCalls: 1,
		},
		{
			name:      "calculate rejects negative income",
			path:      "/api/v1/workflows/calculate",
			body:      `{"income":"-5"}`,
			wantCode:  http.StatusOK,
			wantPhase: workflow.PhaseError,
			wantMsg:   "Please enter a valid income amount",
		},
		{
			name: "compliance service failure",
			path: "/api/v1/workflows/compliance",
			body: `{"tpin":"987654321"}`,
			respond: func(srv *zratest.Server) {
				srv.Respond(zra.CompliancePath, http.StatusBadRequest, zratest.NotRegistered)
			},
			wantCode:  http.StatusOK,
			wantPhase: workflow.PhaseError,
			wantMsg:   "TPIN not registered",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestConsole(t)
			if tt.respond != nil {
				tt.respond(tc.srv)
			}

			w := tc.do(t, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())

			resp := decodeWorkflow(t, w)
			assert.Equal(t, "workflow", resp.Object)
			assert.Equal(t, tt.wantPhase, resp.State.Phase)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.State.Message)
			}
			if tt.wantPhase == workflow.PhaseSuccess {
				assert.NotNil(t, resp.State.View)
			}
			assert.Len(t, tc.srv.Requests(""), tt.wantCalls)
		})
	}
}

func TestSubmitWorkflow_Async(t *testing.T) {
	tc := newTestConsole(t)
	gate := make(chan struct{})
	tc.srv.RespondWith(zra.ComplianceReportPath, zratest.Response{
		Status: http.StatusOK, Body: zratest.ReportBandaOK, Gate: gate,
	})

	w := tc.do(t, http.MethodPost, "/api/v1/workflows/report?async=true", `{"tpin":"123456789"}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	resp := decodeWorkflow(t, w)
	assert.Equal(t, workflow.PhasePending, resp.State.Phase)
	assert.Equal(t, "Generating comprehensive compliance report...", resp.State.Message)

	close(gate)
	tc.engine.Wait()

	w = tc.do(t, http.MethodGet, "/api/v1/workflows/report", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, workflow.PhaseSuccess, decodeWorkflow(t, w).State.Phase)
}

func TestSubmitWorkflow_BadRequests(t *testing.T) {
	tc := newTestConsole(t)

	w := tc.do(t, http.MethodPost, "/api/v1/workflows/refund", `{"tpin":"123456789"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tc.do(t, http.MethodPost, "/api/v1/workflows/verify", `{"tpin":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tc.do(t, http.MethodPost, "/api/v1/workflows/calculate", `{"income":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tc.do(t, http.MethodGet, "/api/v1/workflows/refund", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Empty(t, tc.srv.Requests(""))
}

func TestListWorkflows(t *testing.T) {
	tc := newTestConsole(t)
	w := tc.do(t, http.MethodGet, "/api/v1/workflows", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Object string             `json:"object"`
		Data   []WorkflowResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, 4)
	for i, id := range workflow.All() {
		assert.Equal(t, id, resp.Data[i].Workflow)
		assert.Equal(t, workflow.PhaseIdle, resp.Data[i].State.Phase)
	}
}

func TestQuickActions(t *testing.T) {
	tc := newTestConsole(t)
	tc.srv.Respond(zra.VerifyPath, http.StatusOK, zratest.VerifySambaOK)

	w := tc.do(t, http.MethodGet, "/api/v1/quick-actions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "555666777")

	w = tc.do(t, http.MethodPost, "/api/v1/quick-actions", `{"tpin":"111222333"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp QuickActionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "111222333", resp.Inputs.VerifyTPIN)
	assert.Equal(t, "111222333", resp.Inputs.ComplianceTPIN)
	assert.Equal(t, "111222333", resp.Inputs.ReportTPIN)

	tc.engine.Wait()
	require.Len(t, tc.srv.Requests(""), 1)
	assert.Equal(t, workflow.PhaseSuccess, tc.board.Get(workflow.Verify).Phase)

	w = tc.do(t, http.MethodPost, "/api/v1/quick-actions", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	tc := newTestConsole(t)
	tc.srv.Respond(zra.VerifyPath, http.StatusOK, zratest.VerifyBandaOK)

	tc.do(t, http.MethodPost, "/api/v1/workflows/verify", `{"tpin":"123456789"}`)
	tc.do(t, http.MethodPost, "/api/v1/workflows/verify", `{"tpin":"1"}`)

	w := tc.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `zra_demo_workflow_results_total{outcome="success",workflow="verify"} 1`), body)
	assert.Contains(t, body, `zra_demo_workflow_results_total{outcome="validation",workflow="verify"} 1`)
	assert.Contains(t, body, "zra_demo_service_requests_total")
}

func TestRateLimit(t *testing.T) {
	tc := newTestConsole(t, func(c *config.Config) {
		c.Console.RateLimit = 1
		c.Console.RateBurst = 1
	})

	w := tc.do(t, http.MethodPost, "/api/v1/workflows/verify", `{"tpin":"1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = tc.do(t, http.MethodPost, "/api/v1/workflows/verify", `{"tpin":"1"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")

	w = tc.do(t, http.MethodPost, "/api/v1/quick-actions", `{"tpin":"111222333"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = tc.do(t, http.MethodGet, "/api/v1/workflows/verify", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, tc.srv.Requests(""))
}

func TestRateLimit_Disabled(t *testing.T) {
	tc := newTestConsole(t, func(c *config.Config) { c.Console.RateLimit = -1 })

	for i := 0; i < 30; i++ {
		w := tc.do(t, http.MethodPost, "/api/v1/workflows/verify", `{"tpin":"1"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCORS(t *testing.T) {
	tc := newTestConsole(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/workflows", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestFormValue(t *testing.T) {
	tests := []struct {
		in      string
		want    FormValue
		wantErr bool
	}{
		{`"25000"`, "25000", false},
		{`25000.5`, "25000.5", false},
		{`-5`, "-5", false},
		{`null`, "", false},
		{`"abc"`, "abc", false},
		{`true`, "", true},
	}
	for _, tt := range tests {
		var v FormValue
		err := json.Unmarshal([]byte(tt.in), &v)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
	}
}

func TestSubmitWorkflow_StalledWorkflowDoesNotBlockOthers(t *testing.T) {
	tc := newTestConsole(t)
	gate := make(chan struct{})
	t.Cleanup(func() {
		close(gate)
		tc.engine.Wait()
	})
	tc.srv.RespondWith(zra.CompliancePath, zratest.Response{
		Status: http.StatusOK, Body: zratest.ComplianceKalubaOK, Gate: gate,
	})
	tc.srv.Respond(zra.VerifyPath, http.StatusOK, zratest.VerifyBandaOK)

	w := tc.do(t, http.MethodPost, "/api/v1/workflows/compliance?async=true", `{"tpin":"444555666"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- tc.do(t, http.MethodPost, "/api/v1/workflows/verify", `{"tpin":"123456789"}`)
	}()

	select {
	case w := <-done:
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, workflow.PhaseSuccess, decodeWorkflow(t, w).State.Phase)
	case <-time.After(2 * time.Second):
		t.Fatal("sync verify blocked by a stalled compliance request")
	}
	assert.Equal(t, workflow.PhasePending, tc.engine.State(workflow.Compliance).Phase)
}

func TestSubmitWorkflow_RequestEndsBeforeSettling(t *testing.T) {
	tc := newTestConsole(t)
	gate := make(chan struct{})
	t.Cleanup(func() {
		close(gate)
		tc.engine.Wait()
	})
	tc.srv.RespondWith(zra.ComplianceReportPath, zratest.Response{
		Status: http.StatusOK, Body: zratest.ReportBandaOK, Gate: gate,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workflows/report", strings.NewReader(`{"tpin":"123456789"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, workflow.PhasePending, tc.engine.State(workflow.Report).Phase)
}

func TestSubmitWorkflow_ConcurrentRequests(t *testing.T) {
	tc := newTestConsole(t, func(c *config.Config) { c.Console.RateLimit = -1 })
	tc.srv.Respond(zra.VerifyPath, http.StatusOK, zratest.VerifyBandaOK)
	tc.srv.Respond(zra.CalculateTaxPath, http.StatusOK, zratest.CalculateIncomeOK)

	requests := []struct {
		path string
		body string
	}{
		{"/api/v1/workflows/verify", `{"tpin":"123456789"}`},
		{"/api/v1/workflows/calculate", `{"income":25000}`},
		{"/api/v1/workflows/verify", `{"tpin":"bad"}`},
		{"/api/v1/quick-actions", `{"tpin":"123456789"}`},
	}

	var wg sync.WaitGroup
	codes := make(chan int, 16*len(requests))
	for i := 0; i < 16; i++ {
		for _, r := range requests {
			wg.Add(1)
			go func(path, body string) {
				defer wg.Done()
				codes <- tc.do(t, http.MethodPost, path, body).Code
			}(r.path, r.body)
		}
	}
	wg.Wait()
	tc.engine.Wait()
	close(codes)

	for code := range codes {
		assert.Contains(t, []int{http.StatusOK, http.StatusAccepted}, code)
	}
	assert.Equal(t, workflow.PhaseSuccess, tc.engine.State(workflow.Calculate).Phase)
}
