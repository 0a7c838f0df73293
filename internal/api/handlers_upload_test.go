// handlers_upload_test.go - Tests for the upload handler
package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestHandleUploadFile(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	req := multipartRequest(t, "uploaded.csv", []byte("p,q\n1,2\n3,4\n"))
	rec, err := doRequest(t, h.HandleUploadFile, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "File uploaded successfully: uploaded.csv")

	info := h.slot.Info()
	assert.Equal(t, "uploaded.csv", info.Name)
	assert.Equal(t, "uploaded:uploaded.csv", info.Path)
	assert.Equal(t, 2, info.Rows)
}

func TestHandleUploadFileSanitizesName(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	req := multipartRequest(t, "my data file.csv", []byte("a\n1\n"))
	rec, err := doRequest(t, h.HandleUploadFile, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "my_data_file.csv", h.slot.Info().Name)
}

func TestHandleUploadFileJSON(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	req := multipartRequest(t, "records.json", []byte(`[{"a": 1}, {"a": 2}]`))
	rec, err := doRequest(t, h.HandleUploadFile, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, h.slot.Info().Rows)
}

func TestHandleUploadFileRejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
	}{
		{"unsupported extension", "malware.exe", []byte("x")},
		{"unparseable csv", "broken.csv", []byte("a,b\n1\n1,2,3\n")},
		{"empty dataset", "header_only.csv", []byte("a,b\n")},
		{"invalid json", "bad.json", []byte("{not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, t.TempDir())
			before := h.slot.Info()

			req := multipartRequest(t, tt.filename, tt.content)
			_, err := doRequest(t, h.HandleUploadFile, req)

			require.Error(t, err)
			apiErr, ok := err.(*APIError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)

			// A rejected upload must leave the slot untouched.
			assert.Same(t, before, h.slot.Info())
		})
	}
}

func TestHandleUploadFileSizeCeiling(t *testing.T) {
	slotHandler := newTestHandler(t, t.TempDir())
	h := NewHandler(slotHandler.slot, slotHandler.dataDir, 1) // 1 MB ceiling

	big := bytes.Repeat([]byte("a,b\n1,2\n"), 256*1024) // 2 MB
	req := multipartRequest(t, "big.csv", big)
	_, err := doRequest(t, h.HandleUploadFile, req)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Message, "exceeds maximum allowed size")
}

func TestHandleUploadFileMissingPart(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	_, err := doRequest(t, h.HandleUploadFile, req)
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}
