package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C2IHub/proCURE2/internal/adapters/memory"
	"github.com/C2IHub/proCURE2/internal/scoring"
	"github.com/C2IHub/proCURE2/internal/services/agents"
	"github.com/C2IHub/proCURE2/internal/services/audit"
	"github.com/C2IHub/proCURE2/internal/services/dashboard"
	"github.com/C2IHub/proCURE2/internal/services/requirements"
	"github.com/C2IHub/proCURE2/internal/services/suppliers"
	"github.com/C2IHub/proCURE2/internal/workers/reassess"
)

var now = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts, _ := newTestServerWith(t)
	return ts
}

func newTestServerWith(t *testing.T) (*httptest.Server, *Server) {
	t.Helper()
	store := memory.NewSeeded()
	clock := clockwork.NewFakeClockAt(now)
	engine := scoring.New(store, store, scoring.WithClock(clock))
	auditSvc := audit.New(store, clock)
	srv := New(Deps{
		Suppliers:    suppliers.New(store, engine, store),
		Requirements: requirements.New(store, clock),
		Audit:        auditSvc,
		Agents:       agents.NewCanned(0, scoring.NoJitter{}, clock),
		Dashboard:    dashboard.New(engine, store),
		Directory:    store,
		Processor:    reassess.NewSnapshotProcessor(engine, store, auditSvc),
		Clock:        clock,
	})
	ts := httptest.NewServer(srv.Routes(5 * time.Second))
	t.Cleanup(ts.Close)
	return ts, srv
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	return resp.StatusCode, raw
}

func data(t *testing.T, raw []byte, into any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.NoError(t, json.Unmarshal(env.Data, into))
	return env
}

func errCode(t *testing.T, raw []byte) string {
	t.Helper()
	var e apiError
	require.NoError(t, json.Unmarshal(raw, &e))
	return e.Code
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	code, raw := do(t, ts, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}

func TestSupplierRoutes(t *testing.T) {
	ts := newTestServer(t)

	code, raw := do(t, ts, http.MethodGet, "/suppliers", "")
	require.Equal(t, http.StatusOK, code)
	var list []struct {
		ID     string `json:"id"`
		Rating string `json:"rating"`
	}
	env := data(t, raw, &list)
	assert.Equal(t, now, env.Timestamp)
	require.Len(t, list, len(memory.SeedSuppliers()))
	assert.Equal(t, "SUP001", list[0].ID)
	assert.Equal(t, "preferred", list[0].Rating)

	var one struct {
		Rating         string   `json:"rating"`
		Certifications []string `json:"certifications"`
	}
	code, raw = do(t, ts, http.MethodGet, "/suppliers/SUP004", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &one)
	assert.Equal(t, "restricted", one.Rating)
	assert.Equal(t, []string{"ISO 15378"}, one.Certifications)

	code, raw = do(t, ts, http.MethodGet, "/suppliers/SUP999", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", errCode(t, raw))

	code, _ = do(t, ts, http.MethodGet, "/suppliers/SUP999/risk", "")
	assert.Equal(t, http.StatusNotFound, code)

	var comp struct {
		Overall int    `json:"overall"`
		Status  string `json:"status"`
	}
	code, raw = do(t, ts, http.MethodGet, "/suppliers/SUP001/compliance", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &comp)
	assert.Equal(t, 98, comp.Overall)
	assert.Equal(t, "compliant", comp.Status)

	var risk struct {
		Level string `json:"level"`
	}
	code, raw = do(t, ts, http.MethodGet, "/suppliers/SUP001/risk", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &risk)
	assert.NotEmpty(t, risk.Level)
}

func TestLookup(t *testing.T) {
	ts := newTestServer(t)

	var s struct {
		ID string `json:"id"`
	}
	code, raw := do(t, ts, http.MethodGet, "/suppliers/lookup?url=https://shop.globalpack.co.uk/catalogue", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &s)
	assert.Equal(t, "SUP002", s.ID)

	code, _ = do(t, ts, http.MethodGet, "/suppliers/lookup?url=unknown-vendor.example", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, raw = do(t, ts, http.MethodGet, "/suppliers/lookup", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad_request", errCode(t, raw))
}

func TestRequirementRoutes(t *testing.T) {
	ts := newTestServer(t)

	var reqs []struct {
		SupplierID string `json:"supplierId"`
	}
	code, raw := do(t, ts, http.MethodGet, "/requirements?category=Primary%20Packaging&region=Europe", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &reqs)
	require.Len(t, reqs, 2)
	assert.Equal(t, "SUP001", reqs[0].SupplierID)

	var stats struct {
		Total int `json:"total"`
		Valid int `json:"valid"`
	}
	code, raw = do(t, ts, http.MethodGet, "/requirements/statistics", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &stats)
	assert.Equal(t, 28, stats.Total)
	assert.Equal(t, 25, stats.Valid)

	var expiring []json.RawMessage
	code, raw = do(t, ts, http.MethodGet, "/requirements/expiring?days=30", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &expiring)

	code, _ = do(t, ts, http.MethodGet, "/requirements/expiring?days=soon", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAuditEvents(t *testing.T) {
	ts := newTestServer(t)

	code, raw := do(t, ts, http.MethodGet, "/audit-events?page=1&pageSize=2", "")
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Data []struct {
			SupplierID string `json:"supplierId"`
		} `json:"data"`
		Total    int  `json:"total"`
		Page     int  `json:"page"`
		PageSize int  `json:"pageSize"`
		HasNext  bool `json:"hasNext"`
	}
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.PageSize)
	assert.True(t, page.HasNext)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "SUP001", page.Data[0].SupplierID)

	code, _ = do(t, ts, http.MethodGet, "/audit-events?page=x", "")
	assert.Equal(t, http.StatusBadRequest, code)

	// 1<<60, far past the last page
	code, raw = do(t, ts, http.MethodGet, "/audit-events?page=1152921504606846976&pageSize=16", "")
	require.Equal(t, http.StatusOK, code)
	page.Data = nil
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Empty(t, page.Data)
	assert.Equal(t, 3, page.Total)
	assert.False(t, page.HasNext)
}

func TestDashboardRoutes(t *testing.T) {
	ts := newTestServer(t)

	var metrics []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Value string `json:"value"`
	}
	code, raw := do(t, ts, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &metrics)
	require.Len(t, metrics, 4)
	assert.Equal(t, "critical-alerts", metrics[0].ID)
	assert.Equal(t, "Pending Reviews", metrics[2].Title)
	assert.Equal(t, "1", metrics[2].Value)
	assert.Contains(t, metrics[3].Value, "%")

	var dist struct {
		Compliant int `json:"compliant"`
		Warning   int `json:"warning"`
		Critical  int `json:"critical"`
		Total     int `json:"total"`
	}
	code, raw = do(t, ts, http.MethodGet, "/compliance/distribution", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &dist)
	assert.Equal(t, len(memory.SeedSuppliers()), dist.Total)
	assert.Equal(t, dist.Total, dist.Compliant+dist.Warning+dist.Critical)
	assert.GreaterOrEqual(t, dist.Critical, 2)

	var feed []struct {
		Type       string `json:"type"`
		SupplierID string `json:"supplierId"`
	}
	code, raw = do(t, ts, http.MethodGet, "/activity?limit=2", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &feed)
	require.Len(t, feed, 2)
	assert.Equal(t, "update", feed[0].Type)
	assert.Equal(t, "SUP001", feed[0].SupplierID)
	assert.Equal(t, "alert", feed[1].Type)

	code, _ = do(t, ts, http.MethodGet, "/activity?limit=many", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRFPSuggestions(t *testing.T) {
	ts := newTestServer(t)

	var out []struct {
		ID int `json:"id"`
	}
	code, raw := do(t, ts, http.MethodPost, "/rfp/suggestions", `{"categories":["Primary Packaging"],"markets":["Europe"]}`)
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &out)
	require.Len(t, out, 3)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 5, out[2].ID)

	code, _ = do(t, ts, http.MethodPost, "/rfp/suggestions", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, ts, http.MethodPost, "/rfp/suggestions", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAgentRoutes(t *testing.T) {
	ts := newTestServer(t)

	var list []struct {
		ID string `json:"id"`
	}
	code, raw := do(t, ts, http.MethodGet, "/agents", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &list)
	require.Len(t, list, 3)
	assert.Equal(t, "compliance-analyzer", list[0].ID)

	var resp struct {
		Response  string  `json:"response"`
		SessionID string  `json:"sessionId"`
		Conf      float64 `json:"confidence"`
	}
	code, raw = do(t, ts, http.MethodPost, "/agents/risk-assessor/invoke", `{"prompt":"run a risk assessment","sessionId":"abc"}`)
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &resp)
	assert.Equal(t, "abc", resp.SessionID)
	assert.Contains(t, resp.Response, "Risk assessment completed")
	assert.InDelta(t, 0.85, resp.Conf, 1e-9)

	var agent struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	code, raw = do(t, ts, http.MethodGet, "/agents/risk-assessor", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &agent)
	assert.Equal(t, "Predictive Risk Assessor", agent.Name)
	assert.Equal(t, "completed", agent.Status)

	code, raw = do(t, ts, http.MethodGet, "/agents/unknown", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", errCode(t, raw))

	code, _ = do(t, ts, http.MethodPost, "/agents/unknown/invoke", `{"prompt":"hi"}`)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = do(t, ts, http.MethodPost, "/agents/risk-assessor/invoke", `{"prompt":"  "}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestReassessInline(t *testing.T) {
	ts := newTestServer(t)

	var res struct {
		Status    string `json:"status"`
		Processed int    `json:"processed"`
		Failed    int    `json:"failed"`
	}
	code, raw := do(t, ts, http.MethodPost, "/reassessments?wait=true", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &res)
	assert.Equal(t, "completed", res.Status)
	assert.Equal(t, len(memory.SeedSuppliers()), res.Processed)
	assert.Zero(t, res.Failed)

	var hist []struct {
		Rating string `json:"rating"`
	}
	code, raw = do(t, ts, http.MethodGet, "/suppliers/SUP001/history?limit=5", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &hist)
	require.Len(t, hist, 1)
	assert.Equal(t, "preferred", hist[0].Rating)
}

func TestReassessBackgroundIsTracked(t *testing.T) {
	ts, srv := newTestServerWith(t)

	var res struct {
		Status string `json:"status"`
	}
	code, raw := do(t, ts, http.MethodPost, "/reassessments", "")
	require.Equal(t, http.StatusAccepted, code)
	data(t, raw, &res)
	assert.Equal(t, "accepted", res.Status)

	srv.Wait()
	assert.False(t, srv.running.Load())

	var hist []json.RawMessage
	code, raw = do(t, ts, http.MethodGet, "/suppliers/SUP001/history", "")
	require.Equal(t, http.StatusOK, code)
	data(t, raw, &hist)
	assert.Len(t, hist, 1)
}

func TestReassessRejectsOverlappingRuns(t *testing.T) {
	ts, srv := newTestServerWith(t)
	srv.running.Store(true)

	for _, path := range []string{"/reassessments", "/reassessments?wait=true"} {
		code, raw := do(t, ts, http.MethodPost, path, "")
		assert.Equal(t, http.StatusConflict, code, path)
		assert.Equal(t, "conflict", errCode(t, raw))
	}

	srv.running.Store(false)
	code, _ := do(t, ts, http.MethodPost, "/reassessments?wait=true", "")
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, srv.running.Load())
}
