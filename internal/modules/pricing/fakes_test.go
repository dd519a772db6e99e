package pricing

import (
	"context"
	"errors"
	"time"

	"smartpark/internal/modules/booking"
	"smartpark/internal/modules/zone"
	"smartpark/internal/types"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, ist)
}

type fakeZones struct {
	zones map[types.ID]*zone.Zone
	err   error
	calls int
}

func (f *fakeZones) Get(_ context.Context, id types.ID) (*zone.Zone, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	z, ok := f.zones[id]
	if !ok {
		return nil, zone.ErrNotFound
	}
	return z, nil
}

type fakeSpots struct {
	count int64
	err   error
}

func (f *fakeSpots) CountByZone(context.Context, types.ID) (int64, error) {
	return f.count, f.err
}

type fakeBookings struct {
	count    int64
	countErr error
	list     []booking.Booking
	listErr  error

	gotFrom, gotTo time.Time
	gotStatuses    []booking.Status
}

func (f *fakeBookings) CountInWindow(_ context.Context, _ types.ID, from, to time.Time, statuses []booking.Status) (int64, error) {
	f.gotFrom, f.gotTo, f.gotStatuses = from, to, statuses
	return f.count, f.countErr
}

func (f *fakeBookings) ListCreatedBetween(_ context.Context, _ types.ID, from, to time.Time, statuses []booking.Status) ([]booking.Booking, error) {
	f.gotFrom, f.gotTo, f.gotStatuses = from, to, statuses
	return f.list, f.listErr
}

type fakeDemand struct {
	multiplier float64
	err        error
	calls      int
}

func (f *fakeDemand) Estimate(context.Context, types.ID, time.Time, time.Time) (float64, error) {
	f.calls++
	if f.err != nil {
		return NeutralMultiplier, &EstimationError{Err: f.err}
	}
	return f.multiplier, nil
}

var errStore = errors.New("store unavailable")

func centralZone() *fakeZones {
	return &fakeZones{zones: map[types.ID]*zone.Zone{
		"z1": {ID: "z1", Name: "Central"},
	}}
}
