// README: Base handler utilities (JSON envelope, error mapping).
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpark/internal/http/middleware"
	"smartpark/internal/modules/pricing"
	"smartpark/internal/modules/spot"
	"smartpark/internal/modules/zone"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, dataResponse{Success: true, Data: v})
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrBadRequest),
		errors.Is(err, pricing.ErrInvalidInterval),
		errors.Is(err, pricing.ErrIntervalTooLong),
		errors.Is(err, spot.ErrInvalidStatus):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, pricing.ErrZoneNotFound),
		errors.Is(err, zone.ErrNotFound),
		errors.Is(err, spot.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("http: %s %s: %v", middleware.RequestID(c), c.FullPath(), err)
		writeError(c, http.StatusGatewayTimeout, "request timed out")
	default:
		log.Printf("http: %s %s: %v", middleware.RequestID(c), c.FullPath(), err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
