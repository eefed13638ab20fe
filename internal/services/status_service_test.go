package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sosadmin-backend/internal/firebase"
)

func newStatusTestServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/.json":
			w.Write([]byte(`{"sos_messages": true, "devices": true}`))
		case "/sos_messages.json":
			w.Write([]byte(`{"-Na": true, "-Nb": true, "-Nc": true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestGetStatus_RemoteOnly(t *testing.T) {
	server := newStatusTestServer()
	defer server.Close()

	client := firebase.NewClient(server.URL)
	service := NewStatusService(client, nil, "sos_messages")

	status, err := service.GetStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, status.RootKeys)
	assert.Equal(t, 3, status.Messages)
	assert.False(t, status.ArchiveExists)
	assert.Equal(t, 0, status.Snapshots)
	assert.Equal(t, 0, status.Purges)
}

func TestGetStatus_WithArchive(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	server := newStatusTestServer()
	defer server.Close()

	snapshotService := NewSnapshotService(db)
	require.NoError(t, snapshotService.RecordPurge(200))
	require.NoError(t, snapshotService.RecordPurge(401))

	client := firebase.NewClient(server.URL)
	service := NewStatusService(client, db, "sos_messages")

	status, err := service.GetStatus(context.Background())

	require.NoError(t, err)
	assert.True(t, status.ArchiveExists)
	assert.Equal(t, 0, status.Snapshots)
	assert.Equal(t, 2, status.Purges)
}

func TestGetStatus_RemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := firebase.NewClient(server.URL)
	service := NewStatusService(client, nil, "sos_messages")

	_, err := service.GetStatus(context.Background())

	assert.Error(t, err)
}
