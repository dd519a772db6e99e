package pricing

import (
	"context"
	"errors"
	"testing"

	"smartpark/internal/modules/booking"
	"smartpark/internal/types"
)

func TestMultiplierForRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  float64
	}{
		{1.2, 1.5},
		{0.9, 1.5},
		{0.89999, 1.3},
		{0.7, 1.3},
		{0.69, 1.1},
		{0.5, 1.1},
		{0.49, 1.0},
		{0.21, 1.0},
		{0.2, 0.8},
		{0, 0.8},
	}
	for _, tt := range tests {
		if got := MultiplierForRatio(tt.ratio); got != tt.want {
			t.Errorf("MultiplierForRatio(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestMultiplierForRatio_Monotonic(t *testing.T) {
	prev := MultiplierForRatio(0)
	for i := 1; i <= 200; i++ {
		m := MultiplierForRatio(float64(i) / 100)
		if m < prev {
			t.Fatalf("multiplier decreased at ratio %v: %v < %v", float64(i)/100, m, prev)
		}
		prev = m
	}
}

func TestDemandLevel(t *testing.T) {
	tests := map[float64]string{
		1.5: "Very High",
		1.3: "High",
		1.1: "Moderate",
		1.0: "Normal",
		0.8: "Low",
	}
	for m, want := range tests {
		if got := DemandLevel(m); got != want {
			t.Errorf("DemandLevel(%v) = %q, want %q", m, got, want)
		}
	}
}

func TestHistoricalDemand_Estimate(t *testing.T) {
	start, end := at(2026, 2, 10, 9, 0), at(2026, 2, 10, 11, 0)

	t.Run("uses the window one week earlier", func(t *testing.T) {
		bookings := &fakeBookings{count: 9}
		d := NewHistoricalDemand(centralZone(), &fakeSpots{count: 10}, bookings)
		m, err := d.Estimate(context.Background(), "z1", start, end)
		if err != nil {
			t.Fatalf("Estimate() error = %v", err)
		}
		if m != 1.5 {
			t.Errorf("multiplier = %v, want 1.5", m)
		}
		if !bookings.gotFrom.Equal(at(2026, 2, 3, 9, 0)) || !bookings.gotTo.Equal(at(2026, 2, 3, 11, 0)) {
			t.Errorf("window = %v..%v", bookings.gotFrom, bookings.gotTo)
		}
		if len(bookings.gotStatuses) != 2 || bookings.gotStatuses[0] != booking.StatusConfirmed || bookings.gotStatuses[1] != booking.StatusCompleted {
			t.Errorf("statuses = %v", bookings.gotStatuses)
		}
	})

	t.Run("zone without spots is neutral", func(t *testing.T) {
		d := NewHistoricalDemand(centralZone(), &fakeSpots{}, &fakeBookings{count: 5})
		m, err := d.Estimate(context.Background(), "z1", start, end)
		if err != nil || m != NeutralMultiplier {
			t.Errorf("Estimate() = %v, %v; want 1.0, nil", m, err)
		}
	})

	failures := []struct {
		name     string
		zoneID   types.ID
		zones    *fakeZones
		spots    *fakeSpots
		bookings *fakeBookings
		wantErr  error
	}{
		{"unknown zone", "missing", centralZone(), &fakeSpots{count: 10}, &fakeBookings{}, ErrZoneNotFound},
		{"spot count fails", "z1", centralZone(), &fakeSpots{err: errStore}, &fakeBookings{}, errStore},
		{"booking count fails", "z1", centralZone(), &fakeSpots{count: 10}, &fakeBookings{countErr: errStore}, errStore},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			d := NewHistoricalDemand(tt.zones, tt.spots, tt.bookings)
			m, err := d.Estimate(context.Background(), tt.zoneID, start, end)
			if m != NeutralMultiplier {
				t.Errorf("multiplier = %v, want neutral", m)
			}
			var estErr *EstimationError
			if !errors.As(err, &estErr) {
				t.Fatalf("error = %v, want *EstimationError", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCachedEstimator_DisabledWithoutRedis(t *testing.T) {
	next := &fakeDemand{multiplier: 1.3}
	if got := NewCachedEstimator(next, nil, 0); got != DemandEstimator(next) {
		t.Errorf("expected the wrapped estimator back, got %T", got)
	}
	if k := demandKey("z1", at(2026, 2, 10, 9, 0), at(2026, 2, 10, 10, 0)); k != "pricing:demand:z1:1770694200:1770697800" {
		t.Errorf("demandKey = %q", k)
	}
}
