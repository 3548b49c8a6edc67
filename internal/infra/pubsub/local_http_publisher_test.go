package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishProvisioningIncomplete(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.ProvisioningIncompleteEvent{
		RequestID:   "req-1",
		TraceID:     "trace-1",
		Email:       "ana@example.cl",
		UserID:      "uid-1",
		CompanyID:   "company-1",
		FailedSteps: []string{"set_company_claim"},
		OccurredAt:  time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishProvisioningIncomplete(context.Background(), event))

	assert.Equal(t, "trace-1", requestID)
	assert.Equal(t, "provisioning_incomplete", received.Message.Attributes["event_type"])
	assert.Equal(t, "company-1", received.Message.Attributes["company_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ProvisioningIncompleteEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishProvisioningIncomplete(context.Background(), &service.ProvisioningIncompleteEvent{RequestID: "req-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNoopPublisher(t *testing.T) {
	p := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, p.PublishProvisioningIncomplete(context.Background(), &service.ProvisioningIncompleteEvent{}))
	assert.NoError(t, p.Close())
}
