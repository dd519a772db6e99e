// README: Spot handlers for lookup and operator maintenance.
package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpark/internal/http/middleware"
	"smartpark/internal/modules/spot"
	"smartpark/internal/types"
)

type SpotService interface {
	Get(ctx context.Context, id types.ID) (*spot.Spot, error)
	SetMaintenance(ctx context.Context, id types.ID, enabled bool) (*spot.Spot, error)
}

type SpotHandler struct {
	spots SpotService
}

func NewSpotHandler(svc SpotService) *SpotHandler {
	return &SpotHandler{spots: svc}
}

func (h *SpotHandler) Get(c *gin.Context) {
	sp, err := h.spots.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sp)
}

type maintenanceReq struct {
	Enabled *bool `json:"enabled"`
}

func (h *SpotHandler) SetMaintenance(c *gin.Context) {
	var req maintenanceReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		writeError(c, http.StatusBadRequest, "enabled is required")
		return
	}
	id := types.ID(c.Param("id"))
	sp, err := h.spots.SetMaintenance(c.Request.Context(), id, *req.Enabled)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	log.Printf("http: spot %s maintenance=%t by %s", id, *req.Enabled, middleware.CallerUID(c))
	writeJSON(c, http.StatusOK, sp)
}
