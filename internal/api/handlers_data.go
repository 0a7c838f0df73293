// handlers_data.go - Row export for the explorer UI
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultRowLimit = 100

// HandleData exports rows of the current dataset. JSON by default;
// msgpack when the client sends Accept: application/x-msgpack.
func (h *Handler) HandleData(c echo.Context) error {
	ds, info, _ := h.slot.Snapshot()
	if ds == nil {
		return NewInternalError("no dataset loaded", nil)
	}

	limit := defaultRowLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		// Rows treats limit <= 0 as "all rows"; that is not a knob this
		// endpoint exposes, so zero is rejected like any other bad value.
		if err != nil || n < 1 {
			return NewValidationError("limit must be a positive integer")
		}
		limit = n
	}

	rows := ds.Rows(limit)
	payload := map[string]interface{}{
		"file":  info.Name,
		"rows":  rows,
		"count": len(rows),
		"total": info.Rows,
	}

	if c.Request().Header.Get(echo.HeaderAccept) == "application/x-msgpack" {
		encoded, err := msgpack.Marshal(payload)
		if err != nil {
			return NewInternalError("failed to encode rows", err)
		}
		return c.Blob(http.StatusOK, "application/x-msgpack", encoded)
	}

	return c.JSON(http.StatusOK, payload)
}
