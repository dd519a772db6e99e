// README: Historical demand estimation (same window one week earlier) and the multiplier ladder.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartpark/internal/modules/booking"
	"smartpark/internal/modules/zone"
	"smartpark/internal/types"
)

const NeutralMultiplier = 1.0

type DemandEstimator interface {
	Estimate(ctx context.Context, zoneID types.ID, start, end time.Time) (float64, error)
}

// EstimationError carries the zone whose demand could not be estimated.
type EstimationError struct {
	ZoneID types.ID
	Err    error
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("estimate demand for zone %s: %v", e.ZoneID, e.Err)
}

func (e *EstimationError) Unwrap() error { return e.Err }

// MultiplierForRatio maps an occupancy ratio to a price multiplier. Thresholds are inclusive.
func MultiplierForRatio(ratio float64) float64 {
	switch {
	case ratio >= 0.9:
		return 1.5
	case ratio >= 0.7:
		return 1.3
	case ratio >= 0.5:
		return 1.1
	case ratio <= 0.2:
		return 0.8
	default:
		return NeutralMultiplier
	}
}

func DemandLevel(multiplier float64) string {
	switch {
	case multiplier >= 1.5:
		return "Very High"
	case multiplier >= 1.3:
		return "High"
	case multiplier >= 1.1:
		return "Moderate"
	case multiplier <= 0.8:
		return "Low"
	default:
		return "Normal"
	}
}

// HistoricalDemand compares fulfilled bookings in the window one week earlier with the
// zone's spot count.
type HistoricalDemand struct {
	zones    ZoneReader
	spots    SpotCounter
	bookings BookingHistory
}

func NewHistoricalDemand(zones ZoneReader, spots SpotCounter, bookings BookingHistory) *HistoricalDemand {
	return &HistoricalDemand{zones: zones, spots: spots, bookings: bookings}
}

// Estimate always returns a usable multiplier; on error it is NeutralMultiplier and the
// caller decides whether to degrade.
func (d *HistoricalDemand) Estimate(ctx context.Context, zoneID types.ID, start, end time.Time) (float64, error) {
	from := start.AddDate(0, 0, -7)
	to := end.AddDate(0, 0, -7)

	if _, err := d.zones.Get(ctx, zoneID); err != nil {
		if errors.Is(err, zone.ErrNotFound) {
			err = ErrZoneNotFound
		}
		return NeutralMultiplier, &EstimationError{ZoneID: zoneID, Err: err}
	}

	total, err := d.spots.CountByZone(ctx, zoneID)
	if err != nil {
		return NeutralMultiplier, &EstimationError{ZoneID: zoneID, Err: fmt.Errorf("count spots: %w", err)}
	}
	if total == 0 {
		return NeutralMultiplier, nil
	}

	n, err := d.bookings.CountInWindow(ctx, zoneID, from, to, booking.Fulfilled)
	if err != nil {
		return NeutralMultiplier, &EstimationError{ZoneID: zoneID, Err: fmt.Errorf("count bookings: %w", err)}
	}
	return MultiplierForRatio(float64(n) / float64(total)), nil
}
