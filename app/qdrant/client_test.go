package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCollectionAlreadyExists(t *testing.T) {
	var createAttempted bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/collections/student_notes":
			w.Write([]byte(`{"result":{"status":"green"},"status":"ok","time":0.001}`))
		case r.Method == http.MethodPut:
			createAttempted = true
			w.Write([]byte(`{"result":true,"status":"ok","time":0.001}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	name, created, err := client.EnsureCollection(context.Background(), "student_notes", 1536)

	require.NoError(t, err)
	assert.Equal(t, "student_notes", name)
	assert.False(t, created)
	assert.False(t, createAttempted, "existing collection must not be re-created")
}

func TestEnsureCollectionCreatesWhenAbsent(t *testing.T) {
	var createBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":{"error":"Not found: Collection doesn't exist"},"time":0.001}`))
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&createBody))
			w.Write([]byte(`{"result":true,"status":"ok","time":0.001}`))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	name, created, err := client.EnsureCollection(context.Background(), "student_notes", 1536)

	require.NoError(t, err)
	assert.Equal(t, "student_notes", name)
	assert.True(t, created)

	vectors, ok := createBody["vectors"].(map[string]interface{})
	require.True(t, ok, "create request must carry a vectors config")
	assert.Equal(t, float64(1536), vectors["size"])
	assert.Equal(t, DistanceCosine, vectors["distance"])
}

func TestEnsureCollectionDefaults(t *testing.T) {
	var createBody map[string]interface{}
	var checkedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			checkedPath = r.URL.Path
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&createBody))
			w.Write([]byte(`{"result":true,"status":"ok","time":0.001}`))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	name, created, err := client.EnsureCollection(context.Background(), "", 0)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "student_notes", name)
	assert.Equal(t, "/collections/student_notes", checkedPath)

	vectors := createBody["vectors"].(map[string]interface{})
	assert.Equal(t, float64(1536), vectors["size"])
}

func TestAPIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api-key")
		w.Write([]byte(`{"result":{"status":"green"},"status":"ok","time":0.001}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	_, err := client.CollectionExists(context.Background(), "student_notes")

	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
}

func TestUpsertPointsValidation(t *testing.T) {
	client := NewClient("http://localhost:6333", "")

	err := client.UpsertPoints(context.Background(), "student_notes", []Point{
		{ID: "", Vector: []float32{0.1}},
	})
	assert.Error(t, err)

	err = client.UpsertPoints(context.Background(), "student_notes", []Point{
		{ID: "p1", Vector: nil},
	})
	assert.Error(t, err)

	// No points means nothing to send.
	err = client.UpsertPoints(context.Background(), "student_notes", nil)
	assert.NoError(t, err)
}

func TestSearchPointsDecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/student_notes/points/search", r.URL.Path)
		w.Write([]byte(`{
			"result": [
				{"id":"6af613b6-569c-5c22-9c37-2ed93f31d3af","score":0.92,"payload":{"student_id":"s1","content":"great progress"}},
				{"id":"b04965e6-a9bb-591f-8f8a-1adcb2c8dc39","score":0.81,"payload":{"student_id":"s2","content":"needs help"}}
			],
			"status": "ok",
			"time": 0.002
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	results, err := client.SearchPoints(context.Background(), "student_notes", []float32{0.1, 0.2}, 5, nil)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 0.92, results[0].Score)
	assert.Equal(t, "s1", results[0].Payload["student_id"])
}

func TestErrorStatusSurfacesDriverMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":{"error":"Wrong input: vector size mismatch"},"time":0.001}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.CreateCollection(context.Background(), "student_notes", 1536)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vector size mismatch")
}

func TestDeterministicPointIDIsStable(t *testing.T) {
	a := DeterministicPointID("student-1|2025-01-02|note")
	b := DeterministicPointID("student-1|2025-01-02|note")
	c := DeterministicPointID("student-2|2025-01-02|note")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
