// README: Price quote request/response and pricing errors.
package pricing

import (
	"errors"
	"time"

	"smartpark/internal/types"
)

var (
	ErrBadRequest      = errors.New("zone id, start time and end time are required")
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrZoneNotFound    = errors.New("zone not found")
	ErrIntervalTooLong = errors.New("booking interval exceeds the maximum quote duration")
)

// MaxQuoteDuration bounds a single quote; longer stays are not bookable.
const MaxQuoteDuration = 31 * 24 * time.Hour

type QuoteRequest struct {
	ZoneID types.ID
	Start  time.Time
	End    time.Time
	// SpotID is accepted for API compatibility; it does not affect the price.
	SpotID types.ID
}

// Breakdown keeps the legacy wire names: the *Multiplier fields hold minutes spent
// under each condition and baseRate is the cost of the whole interval at the normal rate.
type Breakdown struct {
	BaseRate         float64 `json:"baseRate"`
	PeakHourMinutes  float64 `json:"peakHourMultiplier"`
	WeekendMinutes   float64 `json:"weekendMultiplier"`
	HolidayMinutes   float64 `json:"holidayMultiplier"`
	DemandMultiplier float64 `json:"demandMultiplier"`
	TotalMinutes     int64   `json:"totalMinutes"`
}

type Quote struct {
	ZoneID          types.ID  `json:"zoneId"`
	ZoneName        string    `json:"zoneName"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int64     `json:"durationMinutes"`
	TotalCost       int64     `json:"totalCost"`
	Currency        string    `json:"currency"`
	CostPerMinute   string    `json:"costPerMinute"`
	Breakdown       Breakdown `json:"breakdown"`
	DemandLevel     string    `json:"demandLevel"`
	Savings         int64     `json:"savings"`
	Segments        []Segment `json:"-"`
}
