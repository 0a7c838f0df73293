// routes.go - Route registration
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the handler into the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.HandleIndex)
	e.GET("/health", h.HandleHealth)
	e.GET("/info", h.HandleInfo)

	apiGroup := e.Group("/api")
	apiGroup.GET("/files", h.HandleListFiles)
	apiGroup.GET("/data", h.HandleData)
	apiGroup.POST("/load-file", h.HandleLoadFile)
	apiGroup.POST("/upload-file", h.HandleUploadFile)
}
