package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/internal/taskstore"
)

func newTestServer(t *testing.T) (*server, http.Handler) {
	t.Helper()
	srv := newServer(taskstore.New())
	return srv, srv.routes()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTaskLifecycle(t *testing.T) {
	_, handler := newTestServer(t)

	// Create
	rec := doJSON(t, handler, http.MethodPost, "/tasks", createTaskRequest{Title: "Buy Milk"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created taskstore.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Buy Milk", created.Title)
	assert.Equal(t, "buy-milk", created.Slug)
	assert.False(t, created.Done)

	// List
	rec = doJSON(t, handler, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []taskstore.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)

	// Get
	rec = doJSON(t, handler, http.MethodGet, "/tasks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Update
	done := true
	title := "Buy   Oat Milk"
	rec = doJSON(t, handler, http.MethodPut, "/tasks/"+created.ID, updateTaskRequest{Title: &title, Done: &done})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated taskstore.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "buy-oat-milk", updated.Slug)
	assert.True(t, updated.Done)

	// Delete
	rec = doJSON(t, handler, http.MethodDelete, "/tasks/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/tasks/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTaskErrors(t *testing.T) {
	_, handler := newTestServer(t)

	t.Run("empty title", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/tasks", createTaskRequest{Title: "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateTaskNotFound(t *testing.T) {
	_, handler := newTestServer(t)

	title := "x"
	rec := doJSON(t, handler, http.MethodPut, "/tasks/missing", updateTaskRequest{Title: &title})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConvertEndpoint(t *testing.T) {
	_, handler := newTestServer(t)

	tests := []struct {
		name string
		body convertRequest
		want string
	}{
		{name: "camel", body: convertRequest{Value: "SCREEN_NAME", Case: "camel"}, want: "screenName"},
		{name: "dot", body: convertRequest{Value: "XMLHttpRequest", Case: "dot"}, want: "xml.http.request"},
		{name: "kebab", body: convertRequest{Value: "Hello   World", Case: "kebab"}, want: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, handler, http.MethodPost, "/convert", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp convertResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Output)
		})
	}
}

func TestConvertEndpointRejectsNonStrings(t *testing.T) {
	_, handler := newTestServer(t)

	// JSON numbers, booleans, arrays, objects, and null all decode to
	// non-string values and must map to 400.
	values := []any{42, true, []string{"a"}, map[string]string{"a": "b"}, nil}
	for _, v := range values {
		rec := doJSON(t, handler, http.MethodPost, "/convert", convertRequest{Value: v, Case: "camel"})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "value %v should be rejected", v)
	}
}

func TestConvertEndpointUnknownCase(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/convert", convertRequest{Value: "hello", Case: "snake"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
