// handlers_upload.go - File upload handler
package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datawalker/backend/internal/dataset"
	"github.com/datawalker/backend/internal/render"
	"github.com/datawalker/backend/internal/upload"
)

// HandleUploadFile accepts a multipart upload, validates it, parses
// it from the in-memory buffer, and replaces the state slot.
func (h *Handler) HandleUploadFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}
	if fileHeader.Filename == "" {
		return NewBadRequestError("no file selected", nil)
	}

	safeName := upload.SanitizeFilename(fileHeader.Filename)

	if ok, reason := upload.Validate(safeName, fileHeader.Size, h.maxUploadMB); !ok {
		return NewValidationError(reason)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return NewInternalError("failed to read uploaded file", err)
	}

	ds, err := dataset.LoadBytes(safeName, data)
	if err != nil {
		return NewBadRequestError(err.Error(), nil)
	}
	if ds.Empty() {
		return NewBadRequestError("uploaded file contains no data", nil)
	}

	info := dataset.Describe(ds, safeName, "uploaded:"+safeName)
	artifact, err := render.HTML(ds, info)
	if err != nil {
		return NewInternalError("failed to render visualization", err)
	}

	h.slot.Replace(ds, info, artifact)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"html":      artifact,
		"file_info": info,
		"message":   fmt.Sprintf("File uploaded successfully: %s", safeName),
	})
}
