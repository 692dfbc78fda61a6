package n1_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger records log entries.
type MockLogger struct {
	Entries []LogEntry
}

// LogEntry is one recorded call.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Entries = append(m.Entries, LogEntry{Level: "debug", Message: msg, Fields: fields})
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Entries = append(m.Entries, LogEntry{Level: "info", Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Entries = append(m.Entries, LogEntry{Level: "warn", Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Entries = append(m.Entries, LogEntry{Level: "error", Message: msg, Fields: fields})
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := n1.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *n1.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *n1.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &n1.Request{
		Method: http.MethodGet,
		Path:   "/organizations",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestInterceptorErrorStopsChain(t *testing.T) {
	t.Parallel()

	chain := n1.NewInterceptorChain()
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *n1.Request) error {
		return errBoom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *n1.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &n1.Request{})
	require.ErrorIs(t, err, errBoom)
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := n1.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *n1.Request, resp *n1.Response) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *n1.Request, resp *n1.Response) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteResponseInterceptors(ctx, &n1.Request{Method: http.MethodGet}, &n1.Response{StatusCode: http.StatusOK})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_ResponseInterceptorErrorsAreJoined(t *testing.T) {
	t.Parallel()

	var chain n1.InterceptorChain

	called := false

	chain.AddResponseInterceptor(
		func(ctx context.Context, req *n1.Request, resp *n1.Response) error {
			return errBoom
		},
		nil,
		func(ctx context.Context, req *n1.Request, resp *n1.Response) error {
			called = true

			return nil
		},
	)

	requests, responses := chain.Len()
	assert.Equal(t, 0, requests)
	assert.Equal(t, 2, responses)

	req := &n1.Request{Method: http.MethodPost, Path: "/organizations/o1/projects"}
	err := chain.ExecuteResponseInterceptors(context.Background(), req, &n1.Response{StatusCode: http.StatusCreated})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "response interceptor 0 for POST /organizations/o1/projects")
	assert.True(t, called)
}

func TestNewLoggingInterceptorChain(t *testing.T) {
	t.Parallel()

	logger := &MockLogger{}
	chain := n1.NewLoggingInterceptorChain(logger)

	requests, responses := chain.Len()
	assert.Equal(t, 2, requests)
	assert.Equal(t, 1, responses)

	req := &n1.Request{Method: http.MethodGet, Path: "/organizations"}
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), req, &n1.Response{StatusCode: http.StatusOK}))

	requestID := req.Headers.Get(n1.RequestIDHeader)
	require.NotEmpty(t, requestID)
	require.Len(t, logger.Entries, 2)
	assert.Equal(t, "API Request", logger.Entries[0].Message)
	assert.Equal(t, requestID, logger.Entries[0].Fields["request_id"])
	assert.Equal(t, "API Response", logger.Entries[1].Message)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := n1.HeaderInterceptor(map[string]string{
		"X-Custom-Header": "custom-value",
	})

	req := &n1.Request{Method: http.MethodGet, Path: "/test"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
}

func TestRequestIDInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := n1.RequestIDInterceptor()

	fresh := &n1.Request{}
	require.NoError(t, interceptor(context.Background(), fresh))

	_, err := uuid.Parse(fresh.Headers.Get(n1.RequestIDHeader))
	require.NoError(t, err)

	preset := &n1.Request{Headers: http.Header{}}
	preset.Headers.Set(n1.RequestIDHeader, "fixed")
	require.NoError(t, interceptor(context.Background(), preset))
	assert.Equal(t, "fixed", preset.Headers.Get(n1.RequestIDHeader))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &MockLogger{}
	req := &n1.Request{Method: http.MethodGet, Path: "/organizations", Headers: http.Header{}}
	req.Headers.Set(n1.RequestIDHeader, "rid")

	require.NoError(t, n1.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, n1.LoggingResponseInterceptor(logger)(context.Background(), req, &n1.Response{StatusCode: http.StatusOK}))
	require.NoError(t, n1.LoggingResponseInterceptor(logger)(context.Background(), req, &n1.Response{StatusCode: http.StatusBadGateway, Error: errBoom}))

	require.Len(t, logger.Entries, 3)
	assert.Equal(t, "API Request", logger.Entries[0].Message)
	assert.Equal(t, "rid", logger.Entries[0].Fields["request_id"])
	assert.Equal(t, "debug", logger.Entries[1].Level)
	assert.Equal(t, "error", logger.Entries[2].Level)
	assert.Equal(t, http.StatusBadGateway, logger.Entries[2].Fields["status_code"])
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := n1.NewMetricsCollector()

	var (
		notifiedEndpoint string
		notifiedMetrics  n1.Metrics
	)

	collector.SetOnChange(func(endpoint string, metrics n1.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	requestInterceptor := n1.MetricsRequestInterceptor(collector)
	responseInterceptor := n1.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &n1.Request{Method: http.MethodGet, Path: "/organizations"}

	require.NoError(t, requestInterceptor(ctx, req))

	time.Sleep(5 * time.Millisecond)

	require.NoError(t, responseInterceptor(ctx, req, &n1.Response{StatusCode: http.StatusOK}))

	assert.Equal(t, "GET /organizations", notifiedEndpoint)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.Greater(t, int64(notifiedMetrics.AverageLatency), int64(0))

	require.NoError(t, responseInterceptor(ctx, &n1.Request{Method: http.MethodGet, Path: "/organizations"}, &n1.Response{StatusCode: http.StatusInternalServerError}))

	metrics := collector.GetMetrics("GET /organizations")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Nil(t, collector.GetMetrics("POST /nowhere"))
}
