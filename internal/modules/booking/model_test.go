package booking

import (
	"testing"
	"time"
)

func TestBooking_Contributes(t *testing.T) {
	tests := map[Status]bool{
		StatusConfirmed: true,
		StatusCompleted: true,
		StatusPending:   false,
		StatusCancelled: false,
	}
	for status, want := range tests {
		if got := (Booking{Status: status}).Contributes(); got != want {
			t.Errorf("Contributes() for %s = %v, want %v", status, got, want)
		}
	}
}

func TestBooking_ActiveAt(t *testing.T) {
	start := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	b := Booking{StartTime: start, EndTime: start.Add(time.Hour)}
	tests := []struct {
		at       time.Time
		active   bool
		upcoming bool
	}{
		{start.Add(-time.Second), false, true},
		{start, true, false},
		{start.Add(30 * time.Minute), true, false},
		{start.Add(time.Hour), true, false},
		{start.Add(time.Hour + time.Second), false, false},
	}
	for _, tt := range tests {
		if got := b.ActiveAt(tt.at); got != tt.active {
			t.Errorf("ActiveAt(%v) = %v, want %v", tt.at, got, tt.active)
		}
		if got := b.UpcomingAt(tt.at); got != tt.upcoming {
			t.Errorf("UpcomingAt(%v) = %v, want %v", tt.at, got, tt.upcoming)
		}
	}
}
