// handlers.go - Page, health, and info handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datawalker/backend/internal/state"
	"github.com/datawalker/backend/internal/web"
)

// Handler serves the explorer UI and the file management API around
// the one mutable slot.
type Handler struct {
	slot        *state.Slot
	dataDir     string
	maxUploadMB int
}

// NewHandler creates the API handler.
func NewHandler(slot *state.Slot, dataDir string, maxUploadMB int) *Handler {
	return &Handler{
		slot:        slot,
		dataDir:     dataDir,
		maxUploadMB: maxUploadMB,
	}
}

// HandleIndex serves the page shell with the current artifact.
func (h *Handler) HandleIndex(c echo.Context) error {
	_, info, artifact := h.slot.Snapshot()
	if info == nil {
		return NewInternalError("no dataset loaded", nil)
	}

	page, err := web.RenderPage(info, artifact)
	if err != nil {
		return NewInternalError("failed to render page", err)
	}
	return c.HTML(http.StatusOK, page)
}

// HandleHealth returns server health plus a short dataset summary.
func (h *Handler) HandleHealth(c echo.Context) error {
	info := h.slot.Info()
	if info == nil {
		return NewInternalError("no dataset loaded", nil)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"file":    info.Name,
		"rows":    info.Rows,
		"columns": info.Columns,
	})
}

// HandleInfo returns the full metadata snapshot of the current dataset.
func (h *Handler) HandleInfo(c echo.Context) error {
	info := h.slot.Info()
	if info == nil {
		return NewInternalError("no dataset loaded", nil)
	}
	return c.JSON(http.StatusOK, info)
}
