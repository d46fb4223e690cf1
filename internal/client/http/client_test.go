package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu        sync.Mutex
	durations int
	counts    []int
	errors    int
}

func (r *recordingCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations++
}

func (r *recordingCollector) RecordRequestCount(method, path string, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = append(r.counts, statusCode)
}

func (r *recordingCollector) RecordRequestError(method, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

func TestHTTPClient_PostJSON(t *testing.T) {
	var gotBody map[string]string
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/verify", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotHeader = r.Header.Get("X-Test")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	metrics := &recordingCollector{}
	client := NewHTTPClient(
		WithBaseURL(server.URL+"/"),
		WithMetricsCollector(metrics),
		WithMiddleware(LoggingMiddleware()),
	)

	resp, err := client.Post(context.Background(), "api/verify", map[string]string{"tpin": "123456789"}, WithHeader("X-Test", "yes"))
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.ProcessJSONResponse(resp, &out))
	assert.True(t, out.OK)
	assert.Equal(t, "123456789", gotBody["tpin"])
	assert.Equal(t, "yes", gotHeader)
	assert.Equal(t, 1, metrics.durations)
	assert.Equal(t, []int{http.StatusOK}, metrics.counts)
	assert.Zero(t, metrics.errors)
}

func TestHTTPClient_ErrorStatusKeepsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"Taxpayer not found"}`))
	}))
	defer server.Close()

	metrics := &recordingCollector{}
	client := NewHTTPClient(WithBaseURL(server.URL), WithMetricsCollector(metrics))

	resp, err := client.Post(context.Background(), "/api/compliance", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "Taxpayer not found")

	require.NotNil(t, resp)
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	assert.JSONEq(t, `{"success":false,"error":"Taxpayer not found"}`, string(body))
	assert.Equal(t, 1, metrics.errors)
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	metrics := &recordingCollector{}
	client := NewHTTPClient(WithBaseURL(url), WithMetricsCollector(metrics))

	resp, err := client.Get(context.Background(), "/health")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "http request failed")
	assert.Equal(t, 1, metrics.errors)
	assert.Equal(t, []int{0}, metrics.counts)
}

func TestHTTPClient_PathWithoutBaseURL(t *testing.T) {
	client := NewHTTPClient()

	_, err := client.Get(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path used without base URL")
}

func TestHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPClient(WithBaseURL(server.URL), WithTimeout(20*time.Millisecond))
	_, err := client.Get(context.Background(), "/slow")
	require.Error(t, err)
}

func TestHTTPError_Error(t *testing.T) {
	err := &HTTPError{StatusCode: 500, Status: "500 Internal Server Error", URL: "http://x/api", Method: "POST", Body: "boom"}
	assert.Equal(t, "POST http://x/api failed with status 500 500 Internal Server Error: boom", err.Error())
}
