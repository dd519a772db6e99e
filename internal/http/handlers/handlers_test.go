// README: Handler tests with stubbed services.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smartpark/internal/http/handlers"
	"smartpark/internal/modules/pricing"
	"smartpark/internal/modules/spot"
	"smartpark/internal/modules/zone"
	"smartpark/internal/types"
)

type stubPricing struct {
	quote    *pricing.Quote
	err      error
	gotReq   pricing.QuoteRequest
	deadline bool
	from, to time.Time
}

func (s *stubPricing) Calculate(ctx context.Context, req pricing.QuoteRequest) (*pricing.Quote, error) {
	s.gotReq = req
	_, s.deadline = ctx.Deadline()
	return s.quote, s.err
}

func (s *stubPricing) History(_ context.Context, zoneID types.ID, from, to time.Time) (*pricing.History, error) {
	s.from, s.to = from, to
	if s.err != nil {
		return nil, s.err
	}
	return &pricing.History{TotalBookings: 3}, nil
}

func (s *stubPricing) PeakHours(context.Context, types.ID, time.Time) (*pricing.PeakReport, error) {
	return &pricing.PeakReport{WeekendDays: []int{0, 6}}, s.err
}

type stubSpots struct {
	spot       *spot.Spot
	err        error
	gotEnabled *bool
}

func (s *stubSpots) Get(context.Context, types.ID) (*spot.Spot, error) {
	return s.spot, s.err
}

func (s *stubSpots) SetMaintenance(_ context.Context, _ types.ID, enabled bool) (*spot.Spot, error) {
	s.gotEnabled = &enabled
	return s.spot, s.err
}

type stubZones struct{}

func (stubZones) Get(_ context.Context, id types.ID) (*zone.Zone, error) {
	if id == "z1" {
		return &zone.Zone{ID: "z1", Name: "Central"}, nil
	}
	return nil, zone.ErrNotFound
}

func newRouter(p *stubPricing, s *stubSpots) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ph := handlers.NewPricingHandler(p, time.Second)
	r.POST("/pricing/calculate", ph.Calculate)
	r.GET("/pricing/history/:zoneId", ph.History)
	r.GET("/pricing/peak-hours/:zoneId", ph.PeakHours)
	sh := handlers.NewSpotHandler(s)
	r.GET("/spots/:id", sh.Get)
	r.PUT("/spots/:id/maintenance", sh.SetMaintenance)
	r.GET("/zones/:id", handlers.NewZoneHandler(stubZones{}).Get)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPricingHandler_Calculate(t *testing.T) {
	p := &stubPricing{quote: &pricing.Quote{ZoneID: "z1", TotalCost: 120, Currency: "INR", CostPerMinute: "4.00"}}
	w := doRequest(newRouter(p, &stubSpots{}), http.MethodPost, "/pricing/calculate", map[string]string{
		"zoneId":    "z1",
		"startTime": "2026-02-10T03:30:00.000Z",
		"endTime":   "2026-02-10T04:00:00Z",
		"spotId":    "s9",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Data["totalCost"] != float64(120) || resp.Data["costPerMinute"] != "4.00" {
		t.Errorf("unexpected response %s", w.Body.String())
	}
	if _, ok := resp.Data["breakdown"]; !ok {
		t.Error("breakdown missing from response")
	}
	if p.gotReq.ZoneID != "z1" || p.gotReq.SpotID != "s9" || p.gotReq.End.Sub(p.gotReq.Start) != 30*time.Minute {
		t.Errorf("request = %+v", p.gotReq)
	}
	if !p.deadline {
		t.Error("expected calculation to run under a deadline")
	}
}

func TestPricingHandler_CalculateErrors(t *testing.T) {
	valid := map[string]string{"zoneId": "z1", "startTime": "2026-02-10T09:00:00Z", "endTime": "2026-02-10T10:00:00Z"}
	tests := []struct {
		name    string
		body    any
		svcErr  error
		want    int
		wantMsg string
	}{
		{"missing zone", map[string]string{"startTime": "2026-02-10T09:00:00Z", "endTime": "2026-02-10T10:00:00Z"}, nil, http.StatusBadRequest, "required"},
		{"bad time", map[string]string{"zoneId": "z1", "startTime": "yesterday", "endTime": "2026-02-10T10:00:00Z"}, nil, http.StatusBadRequest, "startTime"},
		{"invalid interval", valid, pricing.ErrInvalidInterval, http.StatusBadRequest, "end time"},
		{"interval too long", valid, pricing.ErrIntervalTooLong, http.StatusBadRequest, "maximum"},
		{"zone not found", valid, pricing.ErrZoneNotFound, http.StatusNotFound, "zone not found"},
		{"timeout", valid, context.DeadlineExceeded, http.StatusGatewayTimeout, "timed out"},
		{"unexpected", valid, errors.New("db exploded"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newRouter(&stubPricing{err: tt.svcErr}, &stubSpots{}), http.MethodPost, "/pricing/calculate", tt.body)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantMsg) {
				t.Errorf("body %s does not mention %q", w.Body.String(), tt.wantMsg)
			}
			if strings.Contains(w.Body.String(), "db exploded") {
				t.Error("internal error details leaked")
			}
		})
	}
}

func TestPricingHandler_History(t *testing.T) {
	p := &stubPricing{}
	w := doRequest(newRouter(p, &stubSpots{}), http.MethodGet, "/pricing/history/z1?startDate=2026-02-01&endDate=2026-02-08T00:00:00Z", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !p.from.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) || !p.to.Equal(time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window = %v..%v", p.from, p.to)
	}

	w = doRequest(newRouter(p, &stubSpots{}), http.MethodGet, "/pricing/history/z1?startDate=soon", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", w.Code)
	}
}

func TestPricingHandler_PeakHours(t *testing.T) {
	w := doRequest(newRouter(&stubPricing{}, &stubSpots{}), http.MethodGet, "/pricing/peak-hours/z1", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"weekendDays":[0,6]`) {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}

func TestSpotHandler(t *testing.T) {
	s := &stubSpots{spot: &spot.Spot{ID: "s1", Status: spot.StatusUnderMaintenance}}
	r := newRouter(&stubPricing{}, s)

	w := doRequest(r, http.MethodPut, "/spots/s1/maintenance", map[string]bool{"enabled": true})
	if w.Code != http.StatusOK || s.gotEnabled == nil || !*s.gotEnabled {
		t.Errorf("maintenance: got %d, enabled=%v", w.Code, s.gotEnabled)
	}
	if !strings.Contains(w.Body.String(), "Under Maintenance") {
		t.Errorf("body = %s", w.Body.String())
	}

	w = doRequest(r, http.MethodPut, "/spots/s1/maintenance", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing flag: expected 400, got %d", w.Code)
	}

	missing := newRouter(&stubPricing{}, &stubSpots{err: spot.ErrNotFound})
	if w := doRequest(missing, http.MethodGet, "/spots/nope", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown spot: expected 404, got %d", w.Code)
	}
}

func TestZoneHandler(t *testing.T) {
	r := newRouter(&stubPricing{}, &stubSpots{})
	if w := doRequest(r, http.MethodGet, "/zones/z1", nil); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Central") {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
	if w := doRequest(r, http.MethodGet, "/zones/zz", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
