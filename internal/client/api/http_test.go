package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, time.Second)
}

func TestLogin_StoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok123"})
	})

	require.NoError(t, c.Login(context.Background(), "alice", "pw"))
	assert.True(t, c.IsLoggedIn())
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := c.Login(context.Background(), "alice", "bad")
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, c.IsLoggedIn())
}

func TestLists_SendsTokenAndSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		assert.Equal(t, "Travel Plans", r.URL.Query().Get("q"))

		_ = json.NewEncoder(w).Encode([]BucketList{{ID: 1, Name: "Travel Plans"}})
	})
	c.token = "tok123"

	lists, err := c.Lists(context.Background(), "Travel Plans")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Travel Plans", lists[0].Name)
}

func TestGetList_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c.token = "tok123"

	_, err := c.GetList(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLogout_DropsToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "bye"})
	})
	c.token = "tok123"

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, c.IsLoggedIn())
}

func TestSetItemDone(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/bucketlists/3/items/9", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "True", body["done"])

		_ = json.NewEncoder(w).Encode(BucketListItem{ID: 9, Name: "Run 5k", Done: "True"})
	})
	c.token = "tok123"

	item, err := c.SetItemDone(context.Background(), 3, 9, "True")
	require.NoError(t, err)
	assert.Equal(t, "True", item.Done)
}

func TestServerUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond)

	err := c.Register(context.Background(), "alice", "pw")
	assert.True(t, errors.Is(err, ErrUnavailable))
}
