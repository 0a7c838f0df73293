// handlers_files.go - Data directory listing and load-by-path handlers
package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/datawalker/backend/internal/dataset"
	"github.com/datawalker/backend/internal/models"
	"github.com/datawalker/backend/internal/render"
	"github.com/datawalker/backend/internal/storage"
)

type loadFileRequest struct {
	FilePath string `json:"file_path"`
}

// HandleListFiles re-scans the configured data directory. It never
// touches the state slot.
func (h *Handler) HandleListFiles(c echo.Context) error {
	files := storage.ScanDataDir(h.dataDir)
	if len(files) == 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"files":   []models.DataFile{},
			"count":   0,
			"message": "No data files found",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"files": files,
		"count": len(files),
	})
}

// HandleLoadFile loads a data file by path, regenerates the artifact,
// and atomically replaces the state slot.
func (h *Handler) HandleLoadFile(c echo.Context) error {
	var req loadFileRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.FilePath == "" {
		return NewBadRequestError("missing file_path in request body", nil)
	}

	if err := validateFilePath(req.FilePath); err != nil {
		return err
	}

	// Parse and render happen outside the slot lock; only the swap is
	// serialized.
	ds, err := dataset.Load(req.FilePath)
	if err != nil {
		return NewBadRequestError(err.Error(), nil)
	}

	info := dataset.Describe(ds, filepath.Base(req.FilePath), req.FilePath)
	artifact, err := render.HTML(ds, info)
	if err != nil {
		return NewInternalError("failed to render visualization", err)
	}

	h.slot.Replace(ds, info, artifact)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"html":      artifact,
		"file_info": info,
	})
}

// validateFilePath maps filesystem state onto API errors: absent
// paths are 404, non-files and unreadable files are 400.
func validateFilePath(path string) *APIError {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return NewNotFoundError("file", path)
	}
	if err != nil {
		return NewBadRequestError(fmt.Sprintf("cannot access file: %s", path), err)
	}
	if !stat.Mode().IsRegular() {
		return NewBadRequestError(fmt.Sprintf("path is not a file: %s", path), nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return NewBadRequestError(fmt.Sprintf("file is not readable: %s", path), err)
	}
	f.Close()
	return nil
}
