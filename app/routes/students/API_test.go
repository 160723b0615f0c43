package students

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesRejectUnconfiguredDatabase(t *testing.T) {
	app := fiber.New()
	SetupStudentsRoutes(app, nil)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/students/"},
		{http.MethodGet, "/api/students/some-id"},
		{http.MethodPost, "/api/students/"},
		{http.MethodPut, "/api/students/some-id"},
		{http.MethodDelete, "/api/students/some-id"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s %s", tc.method, tc.path)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Contains(t, body["error"], "not configured", "%s %s", tc.method, tc.path)
	}
}
