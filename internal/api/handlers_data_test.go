// handlers_data_test.go - Tests for the row export endpoint
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestHandleData(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	rec, err := doRequest(t, h.HandleData, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		File  string           `json:"file"`
		Rows  []map[string]any `json:"rows"`
		Count int              `json:"count"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "seed.csv", body.File)
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, "x", body.Rows[0]["b"])
}

func TestHandleDataLimit(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/data?limit=2", nil)
	rec, err := doRequest(t, h.HandleData, req)
	require.NoError(t, err)

	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), `"total":3`)
}

func TestHandleDataInvalidLimit(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	for _, limit := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/data?limit="+limit, nil)
		_, err := doRequest(t, h.HandleData, req)

		require.Error(t, err, "limit=%s", limit)
		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	}
}

func TestHandleDataMsgpack(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.Header.Set(echo.HeaderAccept, "application/x-msgpack")
	rec, err := doRequest(t, h.HandleData, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-msgpack", rec.Header().Get(echo.HeaderContentType))

	var body map[string]any
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "seed.csv", body["file"])
}
