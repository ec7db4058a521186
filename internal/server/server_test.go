package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/fitcheck/internal/config"
	"github.com/dotcommander/fitcheck/internal/logging"
	"github.com/dotcommander/fitcheck/internal/types"
)

const topBody = `{
  "garment": {
    "type": "top",
    "subType": "t-shirt",
    "sizes": {
      "M": {"chest": 21, "shoulder": 18, "sleeveLength": 8, "frontLength": 28},
      "L": {"chest": 22, "shoulder": 19, "sleeveLength": 8.5, "frontLength": 29},
      "S": {"chest": 20, "shoulder": 17, "sleeveLength": 7.5, "frontLength": 27}
    }
  },
  "size": "M",
  "user": {"height": 70, "inseam": 31, "chest": 38, "shoulderWidth": 18, "sleeveLength": 8}
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Options{
		Config: config.ServerConfig{Addr: "127.0.0.1:0"},
		Logger: logging.NewTestLogger(t),
	})
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestScorecard(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/scorecards", topBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	_, err := uuid.Parse(rec.Header().Get(ScorecardIDHeader))
	assert.NoError(t, err)

	var result types.ScorecardResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "M", result.Size)
	assert.Equal(t, "top", result.GarmentType)
	require.Len(t, result.Measurements, 4)
	assert.Equal(t, "Chest", result.Measurements[0].MeasurementName)
	assert.Empty(t, result.MissingMeasurements)
}

func TestScorecardUnpublishedSize(t *testing.T) {
	body := strings.Replace(topBody, `"size": "M"`, `"size": "XL"`, 1)
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/scorecards", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ScorecardResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Measurements)
	assert.Len(t, result.MissingMeasurements, 4)
}

func TestScorecardAll(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/scorecards/all", topBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(ScorecardIDHeader))

	var results []types.ScorecardResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, []string{"S", "M", "L"}, []string{results[0].Size, results[1].Size, results[2].Size})
}

func TestScorecardBadRequests(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		body        string
		wantError   string
		wantDetails bool
	}{
		{
			name:      "empty body",
			path:      "/v1/scorecards",
			body:      "",
			wantError: "empty",
		},
		{
			name:      "malformed",
			path:      "/v1/scorecards",
			body:      `{"garment": [`,
			wantError: "",
		},
		{
			name:      "missing user",
			path:      "/v1/scorecards",
			body:      `{"garment": {"type": "top", "subType": "tee", "sizes": {}}, "size": "M"}`,
			wantError: "missing user object",
		},
		{
			name:        "invalid garment type",
			path:        "/v1/scorecards",
			body:        `{"garment": {"type": "dress", "subType": "midi", "sizes": {}}, "size": "M", "user": {}}`,
			wantError:   "invalid garment",
			wantDetails: true,
		},
		{
			name:        "negative chest",
			path:        "/v1/scorecards/all",
			body:        `{"garment": {"type": "top", "subType": "tee", "sizes": {"M": {"chest": -1}}}, "user": {}}`,
			wantError:   "invalid garment",
			wantDetails: true,
		},
		{
			name:        "user out of range",
			path:        "/v1/scorecards/all",
			body:        `{"garment": {"type": "top", "subType": "tee", "sizes": {}}, "user": {"chest": 500}}`,
			wantError:   "invalid user",
			wantDetails: true,
		},
		{
			name:      "missing size",
			path:      "/v1/scorecards",
			body:      `{"garment": {"type": "top", "subType": "tee", "sizes": {}}, "user": {}}`,
			wantError: "size is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t), http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Contains(t, resp.Error, tt.wantError)
			if tt.wantDetails {
				assert.NotEmpty(t, resp.Details)
			}
			assert.Empty(t, rec.Header().Get(ScorecardIDHeader))
		})
	}
}

func TestMeasurements(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/measurements", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 10)
	assert.Equal(t, "chest", list[0]["dimension"])

	rec = do(t, s, http.MethodGet, "/v1/measurements/legOpening", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var one map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Equal(t, "legOpening", one["dimension"])
	assert.NotEmpty(t, one["whatThisMeans"])
	assert.Len(t, one["categories"], 4)

	rec = do(t, s, http.MethodGet, "/v1/measurements/neck", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown measurement: neck")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/v1/scorecards", topBody)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `fitcheck_http_requests_total{method="POST",route="/v1/scorecards",status="200"} 1`)
	assert.Contains(t, body, `fitcheck_scorecards_evaluated_total{garment_type="top"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	s, err := New(Options{Config: config.ServerConfig{AllowedOrigins: []string{"https://shop.example"}}})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/v1/scorecards", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestListenAndServeShutdown(t *testing.T) {
	s := newTestServer(t)
	s.cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
