package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "vl_testkey")
	return srv, client
}

func jsonResponse(data any) []byte {
	b, _ := json.Marshal(map[string]any{"data": data})
	return b
}

func TestFetchItemsEnvelope(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer vl_testkey", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("skip"))
		w.Write(jsonResponse([]map[string]any{
			{"id": "p1", "title": "Lamp", "tags": []string{"home"}},
			{"title": "Chair"},
		}))
	})

	list, err := client.FetchItems("/api/products", QueryParams{"limit": "50", "skip": ""})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, []string{"home"}, list[0].Tags)
	assert.Equal(t, "2", list[1].ID)
	assert.Equal(t, "Chair", list[1].Title)
}

func TestFetchItemsBareArray(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`  [{"id":"a","title":"Alpha","body":"**bold**"}]`))
	})

	list, err := client.FetchItems("/items", nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "**bold**", list[0].Body)
}

func TestFetchItemsNoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	list, err := NewClient(srv.URL+"/", "").FetchItems("/items", nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFetchItemsMalformedBody(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": "nope"`))
	})

	_, err := client.FetchItems("/items", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestErrorEnvelopeIsSurfaced(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":"FORBIDDEN","message":"bad key"}}`))
	})

	_, err := client.FetchItems("/items", nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
	assert.Equal(t, "FORBIDDEN: bad key", statusErr.Message)
}

func TestErrorDetailIsSurfaced(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"no such list"}`))
	})

	_, err := client.FetchItems("/items", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 404: no such list", err.Error())
}

func TestPlainErrorBody(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down\n"))
	})

	_, err := client.FetchItems("/items", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: upstream down", err.Error())
}

func TestHealth(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status":"ok"}`))
	})

	status, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", status)
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "", 20*time.Millisecond)
	_, err := client.FetchItems("/items", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestNewDefaultClient(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewDefaultClient("", "").BaseURL())
	assert.Equal(t, "http://example.test", NewDefaultClient("http://example.test/", "").BaseURL())
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "/items", buildQuery("/items", nil))
	assert.Equal(t, "/items", buildQuery("/items", QueryParams{"q": ""}))
	assert.Equal(t, "/items?q=lamp", buildQuery("/items", QueryParams{"q": "lamp"}))
	assert.Equal(t, "/items?page=2&q=lamp", buildQuery("/items?page=2", QueryParams{"q": "lamp"}))
}
