// README: Pricing handlers for quotes and zone pricing analytics.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartpark/internal/modules/pricing"
	"smartpark/internal/types"
)

type PricingService interface {
	Calculate(ctx context.Context, req pricing.QuoteRequest) (*pricing.Quote, error)
	History(ctx context.Context, zoneID types.ID, from, to time.Time) (*pricing.History, error)
	PeakHours(ctx context.Context, zoneID types.ID, now time.Time) (*pricing.PeakReport, error)
}

type PricingHandler struct {
	pricing PricingService
	timeout time.Duration
	now     func() time.Time
}

func NewPricingHandler(svc PricingService, timeout time.Duration) *PricingHandler {
	return &PricingHandler{pricing: svc, timeout: timeout, now: time.Now}
}

type calculateReq struct {
	ZoneID    string `json:"zoneId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SpotID    string `json:"spotId"`
}

func (h *PricingHandler) Calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ZoneID == "" || req.StartTime == "" || req.EndTime == "" {
		writeError(c, http.StatusBadRequest, pricing.ErrBadRequest.Error())
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid startTime")
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid endTime")
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	q, err := h.pricing.Calculate(ctx, pricing.QuoteRequest{
		ZoneID: types.ID(req.ZoneID),
		Start:  start,
		End:    end,
		SpotID: types.ID(req.SpotID),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, q)
}

func (h *PricingHandler) History(c *gin.Context) {
	zoneID := c.Param("zoneId")
	from, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "endDate")
	if !ok {
		return
	}
	hist, err := h.pricing.History(c.Request.Context(), types.ID(zoneID), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, hist)
}

func (h *PricingHandler) PeakHours(c *gin.Context) {
	report, err := h.pricing.PeakHours(c.Request.Context(), types.ID(c.Param("zoneId")), h.now())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, report)
}

// parseDateQuery accepts RFC 3339 timestamps or yyyy-mm-dd dates. A missing value is zero.
func parseDateQuery(c *gin.Context, key string) (time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, true
	}
	writeError(c, http.StatusBadRequest, "invalid "+key)
	return time.Time{}, false
}
