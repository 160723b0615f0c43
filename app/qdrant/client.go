// Package qdrant is a small REST client for the Qdrant vector store,
// covering collection provisioning and point operations for student notes.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxErrorBodyBytes = 1024

// Distance used for the student notes collection. Anyone targeting a
// different embedding model changes the vector size, not the metric.
const DistanceCosine = "Cosine"

var pointIDNamespace = uuid.MustParse("8f4a2c31-95d7-4b6e-a1c0-3de94b7d51a2")

// Client talks to a single Qdrant endpoint over its HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Point is one embedding plus its payload.
type Point struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// ScoredPoint is a search hit.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Status json.RawMessage `json:"status"`
	Time   float64         `json:"time"`
}

func NewClient(url, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(url), "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// DeterministicPointID derives a stable UUID point id from an application key,
// so re-upserting the same note overwrites rather than duplicates.
func DeterministicPointID(key string) string {
	return uuid.NewSHA1(pointIDNamespace, []byte(key)).String()
}

// HealthCheck verifies the endpoint is reachable and ready.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/readyz", nil)
	if err != nil {
		return fmt.Errorf("failed to build ready request: %v", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant ready check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant ready check returned status %d", resp.StatusCode)
	}
	return nil
}

// CollectionExists reports whether the named collection is present.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/collections/"+name, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build collection request: %v", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("qdrant request failed: %v", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, fmt.Errorf("qdrant collection check returned status %d", resp.StatusCode)
	}
}

// CreateCollection creates the named collection with the given vector width
// and cosine distance.
func (c *Client) CreateCollection(ctx context.Context, name string, vectorSize int) error {
	body := map[string]interface{}{
		"vectors": map[string]interface{}{
			"size":     vectorSize,
			"distance": DistanceCosine,
		},
	}
	return c.doJSON(ctx, http.MethodPut, "/collections/"+name, body, nil)
}

// EnsureCollection makes sure the collection exists, creating it if absent.
// The existence check decides whether creation is attempted, so an existing
// collection is never an error. Returns the resolved collection name and
// whether it was created on this call.
func (c *Client) EnsureCollection(ctx context.Context, name string, vectorSize int) (string, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "student_notes"
	}
	if vectorSize <= 0 {
		vectorSize = 1536
	}

	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return name, false, err
	}
	if exists {
		return name, false, nil
	}

	if err := c.CreateCollection(ctx, name, vectorSize); err != nil {
		return name, false, err
	}
	return name, true, nil
}

// UpsertPoints writes points into the collection, waiting for the operation
// to be applied.
func (c *Client) UpsertPoints(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}
	for _, p := range points {
		if p.ID == "" {
			return fmt.Errorf("point id is required")
		}
		if len(p.Vector) == 0 {
			return fmt.Errorf("point %q has an empty vector", p.ID)
		}
	}

	body := map[string]interface{}{"points": points}
	return c.doJSON(ctx, http.MethodPut, "/collections/"+collection+"/points?wait=true", body, nil)
}

// SearchPoints runs a similarity search and returns scored payloads.
func (c *Client) SearchPoints(ctx context.Context, collection string, vector []float32, limit int, filter map[string]interface{}) ([]ScoredPoint, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("query vector is required")
	}
	if limit <= 0 {
		limit = 10
	}

	body := map[string]interface{}{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}
	if len(filter) > 0 {
		body["filter"] = filter
	}

	var results []ScoredPoint
	if err := c.doJSON(ctx, http.MethodPost, "/collections/"+collection+"/points/search", body, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// DeletePoints removes points by id, waiting for the operation to be applied.
func (c *Client) DeletePoints(ctx context.Context, collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	body := map[string]interface{}{"points": ids}
	return c.doJSON(ctx, http.MethodPost, "/collections/"+collection+"/points/delete?wait=true", body, nil)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(in); err != nil {
			return fmt.Errorf("failed to encode request: %v", err)
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10*maxErrorBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant returned status %d: %s", resp.StatusCode, truncateBody(raw))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode qdrant response: %v", err)
	}
	if statusErr := parseStatus(env.Status); statusErr != "" {
		return fmt.Errorf("qdrant operation failed: %s", statusErr)
	}

	if out == nil || len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("failed to decode qdrant result: %v", err)
	}
	return nil
}

// parseStatus returns an error message when the response envelope carries one;
// "ok" and empty statuses return "".
func parseStatus(raw json.RawMessage) string {
	status := strings.TrimSpace(string(raw))
	if status == "" || status == "null" {
		return ""
	}

	var statusString string
	if err := json.Unmarshal(raw, &statusString); err == nil {
		if strings.EqualFold(statusString, "ok") {
			return ""
		}
		return statusString
	}

	var statusObject struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &statusObject); err == nil && strings.TrimSpace(statusObject.Error) != "" {
		return strings.TrimSpace(statusObject.Error)
	}

	return status
}

func truncateBody(raw []byte) string {
	if len(raw) <= maxErrorBodyBytes {
		return string(raw)
	}
	return string(raw[:maxErrorBodyBytes]) + "..."
}
