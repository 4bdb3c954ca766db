package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_Get(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departments", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Financeiro"}]`))
	}))
	defer backend.Close()

	client := NewAPIClient(Config{ApiBaseURL: backend.URL, TimeoutSeconds: 5})

	q := url.Values{}
	q.Set("limit", "50")
	raw, err := client.Get(context.Background(), "/departments", q)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Financeiro"}]`, string(raw))
}

func TestAPIClient_Post_SendsApiKey(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "RH", payload["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":2,"name":"RH"}`))
	}))
	defer backend.Close()

	client := NewAPIClient(Config{ApiBaseURL: backend.URL, ApiKey: "secret"})

	raw, err := client.Post(context.Background(), "/departments", map[string]any{"name": "RH"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"RH"}`, string(raw))
}

func TestAPIClient_ErrorEnvelope(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"department not found"}`))
	}))
	defer backend.Close()

	client := NewAPIClient(Config{ApiBaseURL: backend.URL})

	raw, err := client.Post(context.Background(), "/employees", map[string]any{"department_id": 999})
	require.NoError(t, err, "API rejections are data, not errors")

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, false, envelope["ok"])
	assert.Equal(t, float64(400), envelope["status"])
	assert.Equal(t, map[string]any{"error": "department not found"}, envelope["body"])
}

func TestAPIClient_ErrorEnvelope_NonJSONBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer backend.Close()

	client := NewAPIClient(Config{ApiBaseURL: backend.URL})

	raw, err := client.Get(context.Background(), "/invoices", nil)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, float64(500), envelope["status"])
	assert.Equal(t, "upstream exploded", envelope["body"])
}

func TestAPIClient_ConnectionError(t *testing.T) {
	client := NewAPIClient(Config{ApiBaseURL: "http://127.0.0.1:1"})

	_, err := client.Get(context.Background(), "/departments", nil)
	assert.Error(t, err)
}

func TestConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8001", Config{Port: "8001"}.Addr())
}
