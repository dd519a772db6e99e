// README: Zone lookup handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpark/internal/modules/zone"
	"smartpark/internal/types"
)

type ZoneService interface {
	Get(ctx context.Context, id types.ID) (*zone.Zone, error)
}

type ZoneHandler struct {
	zones ZoneService
}

func NewZoneHandler(svc ZoneService) *ZoneHandler {
	return &ZoneHandler{zones: svc}
}

func (h *ZoneHandler) Get(c *gin.Context) {
	z, err := h.zones.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, z)
}
