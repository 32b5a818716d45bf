package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
)

func TestPushSendsSyncEnvelope(t *testing.T) {
	var received syncEnvelope
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	state := domain.AppState{CompanyName: "Acme Ltd"}
	err := NewWebhookSyncer().Push(context.Background(), server.URL, state)
	require.NoError(t, err)
	assert.Equal(t, "sync", received.Action)
	assert.Equal(t, "Acme Ltd", received.Data.CompanyName)
}

func TestPushReportsNon2xxAsSyncFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script error", http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewWebhookSyncer().Push(context.Background(), server.URL, domain.AppState{})
	assert.ErrorIs(t, err, apperrors.ErrSyncFailure)
}

func TestPushReportsTransportErrorAsSyncFailure(t *testing.T) {
	err := NewWebhookSyncer().Push(context.Background(), "http://127.0.0.1:1", domain.AppState{})
	assert.ErrorIs(t, err, apperrors.ErrSyncFailure)
}
