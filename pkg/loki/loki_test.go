package loki

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockLogger struct{}

func (m *mockLogger) Error(msg string, args ...any) {
}

func Test_New_ValidatesConfigAndAppliesDefaults(t *testing.T) {
	cfg := Config{}
	_, err := New(context.Background(), cfg, &mockLogger{})
	assert.Error(t, err)

	cfg.URL = "http://localhost/loki/api/v1/push"
	client, err := New(context.Background(), cfg, &mockLogger{})
	assert.NoError(t, err)
	defer client.Stop()

	assert.Equal(t, cfg.URL, client.config.URL)
	assert.Equal(t, 1000, client.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, client.config.BatchMaxWait)
	assert.Equal(t, map[string]string{}, client.config.Labels)
}

func Test_Push_WhenBatchFull_ShouldSendGzippedStream(t *testing.T) {
	received := make(chan pushRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gz, err := gzip.NewReader(r.Body)
		assert.NoError(t, err)
		var req pushRequest
		assert.NoError(t, json.NewDecoder(gz).Decode(&req))
		received <- req
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := New(context.Background(), Config{
		URL:          server.URL,
		Labels:       map[string]string{"app": "test"},
		BatchMaxSize: 2,
		BatchMaxWait: time.Minute,
	}, &mockLogger{})
	assert.NoError(t, err)
	defer client.Stop()

	client.Push(LogEntry{Level: "info", Message: "first"})
	client.Push(LogEntry{Level: "error", Message: "second"})

	select {
	case req := <-received:
		assert.Len(t, req.Streams, 1)
		assert.Equal(t, map[string]string{"app": "test"}, req.Streams[0].Stream)
		assert.Len(t, req.Streams[0].Values, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch received")
	}
}
