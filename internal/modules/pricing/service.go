// README: Pricing service computes segmented, demand-adjusted parking quotes.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"smartpark/internal/modules/zone"
	"smartpark/internal/types"
)

// roundingSlack absorbs float error (480*1.1 = 528.0000000000001) before ceiling.
const roundingSlack = 1e-9

var tracer = otel.Tracer("smartpark/pricing")

type Service struct {
	zones    ZoneReader
	demand   DemandEstimator
	bookings BookingHistory
	rates    RateTable
	now      func() time.Time
}

func NewService(zones ZoneReader, demand DemandEstimator, bookings BookingHistory, rates RateTable) *Service {
	return &Service{
		zones:    zones,
		demand:   demand,
		bookings: bookings,
		rates:    rates,
		now:      time.Now,
	}
}

func (s *Service) Calculate(ctx context.Context, req QuoteRequest) (*Quote, error) {
	ctx, span := tracer.Start(ctx, "pricing.Calculate",
		trace.WithAttributes(attribute.String("zone.id", string(req.ZoneID))),
	)
	defer span.End()

	q, err := s.calculate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("quote.total", q.TotalCost),
		attribute.Float64("quote.demand_multiplier", q.Breakdown.DemandMultiplier),
	)
	return q, nil
}

func (s *Service) calculate(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if req.ZoneID.Empty() || req.Start.IsZero() || req.End.IsZero() {
		return nil, ErrBadRequest
	}
	duration := DurationMinutes(req.Start, req.End)
	if duration <= 0 {
		return nil, ErrInvalidInterval
	}
	if req.End.Sub(req.Start) > MaxQuoteDuration {
		return nil, ErrIntervalTooLong
	}

	z, err := s.zones.Get(ctx, req.ZoneID)
	if errors.Is(err, zone.ErrNotFound) {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}

	segs := s.rates.Segments(req.Start, req.End)
	bd := Breakdown{TotalMinutes: duration}
	var raw float64
	for _, seg := range segs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw += seg.Minutes * float64(seg.Rate)
		bd.BaseRate += seg.Minutes * float64(s.rates.Normal)
		if seg.Conditions.Peak {
			bd.PeakHourMinutes += seg.Minutes
		}
		if seg.Conditions.Weekend {
			bd.WeekendMinutes += seg.Minutes
		}
		if seg.Conditions.Holiday {
			bd.HolidayMinutes += seg.Minutes
		}
	}

	multiplier, err := s.demand.Estimate(ctx, req.ZoneID, req.Start, req.End)
	if err != nil {
		log.Printf("pricing: %v; using neutral multiplier", err)
		multiplier = NeutralMultiplier
	}
	bd.DemandMultiplier = multiplier

	total := ceilAmount(raw * multiplier)
	var savings int64
	if multiplier > 0 && multiplier < 1 {
		savings = ceilAmount(float64(total)/multiplier - float64(total))
	}

	return &Quote{
		ZoneID:          z.ID,
		ZoneName:        z.Name,
		StartTime:       req.Start,
		EndTime:         req.End,
		DurationMinutes: duration,
		TotalCost:       total,
		Currency:        types.CurrencyINR,
		CostPerMinute:   fmt.Sprintf("%.2f", float64(total)/float64(duration)),
		Breakdown:       bd,
		DemandLevel:     DemandLevel(multiplier),
		Savings:         savings,
		Segments:        segs,
	}, nil
}

// ceilAmount rounds up to a whole rupee.
func ceilAmount(v float64) int64 {
	if v <= 0 {
		return 0
	}
	return int64(math.Ceil(v - roundingSlack))
}
