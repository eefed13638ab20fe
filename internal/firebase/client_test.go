package firebase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDelete(t *testing.T) {
	t.Run("sends DELETE to the root endpoint", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("null"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.Delete(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/.json", gotPath)
	})

	t.Run("sends DELETE to a subtree endpoint", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.Delete(context.Background(), "sos_messages")

		require.NoError(t, err)
		assert.Equal(t, "/sos_messages.json", gotPath)
	})

	t.Run("returns StatusError with body on rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Permission denied"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.Delete(context.Background(), "")

		require.Error(t, err)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Equal(t, `{"error": "Permission denied"}`, statusErr.Body)
	})

	t.Run("returns a transport error when the server is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // Close immediately so the request fails

		client := NewClientWithHTTPClient(server.URL, &http.Client{Timeout: time.Second})
		err := client.Delete(context.Background(), "")

		require.Error(t, err)
		var statusErr *StatusError
		assert.False(t, errors.As(err, &statusErr))
	})
}

func TestClientGet(t *testing.T) {
	t.Run("decodes the subtree", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.Write([]byte(`{"-Nabc": {"message": "help", "lat": 12.5}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var tree map[string]interface{}
		err := client.Get(context.Background(), "sos_messages", &tree)

		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Equal(t, "/sos_messages.json", gotPath)
		require.Contains(t, tree, "-Nabc")
		entry := tree["-Nabc"].(map[string]interface{})
		assert.Equal(t, "help", entry["message"])
		assert.Equal(t, 12.5, entry["lat"])
	})

	t.Run("decodes null for an empty subtree", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("null"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var tree interface{}
		err := client.Get(context.Background(), "sos_messages", &tree)

		require.NoError(t, err)
		assert.Nil(t, tree)
	})

	t.Run("returns StatusError on non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("not found"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var tree interface{}
		err := client.Get(context.Background(), "sos_messages", &tree)

		require.Error(t, err)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("fails on an unparseable body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var tree interface{}
		err := client.Get(context.Background(), "sos_messages", &tree)

		assert.Error(t, err)
	})
}

func TestClientKeys(t *testing.T) {
	t.Run("requests a shallow read and sorts the keys", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"b": true, "a": true, "c": true}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		keys, err := client.Keys(context.Background(), "sos_messages")

		require.NoError(t, err)
		assert.Equal(t, "shallow=true", gotQuery)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
	})

	t.Run("returns no keys for an empty subtree", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("null"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		keys, err := client.Keys(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

func TestEndpoint(t *testing.T) {
	client := NewClient("https://example.firebaseio.com/")

	assert.Equal(t, "https://example.firebaseio.com/.json", client.endpoint(""))
	assert.Equal(t, "https://example.firebaseio.com/sos_messages.json", client.endpoint("sos_messages"))
	assert.Equal(t, "https://example.firebaseio.com/a/b.json", client.endpoint("/a/b/"))
}
