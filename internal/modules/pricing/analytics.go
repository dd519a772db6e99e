// README: Zone pricing analytics: revenue history and booking peak patterns.
package pricing

import (
	"context"
	"math"
	"sort"
	"time"

	"smartpark/internal/modules/booking"
	"smartpark/internal/types"
)

const (
	defaultHistoryWindow = 7 * 24 * time.Hour
	peakAnalysisWindow   = 30 * 24 * time.Hour
	topHours             = 5
)

type HourlyRevenue struct {
	Hour         int     `json:"hour"`
	BookingCount int     `json:"bookingCount"`
	TotalRevenue int64   `json:"totalRevenue"`
	AveragePrice float64 `json:"averagePrice"`
}

type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type History struct {
	Period        Period          `json:"period"`
	TotalBookings int             `json:"totalBookings"`
	TotalRevenue  int64           `json:"totalRevenue"`
	AverageCost   int64           `json:"averageCost"`
	HourlyData    []HourlyRevenue `json:"hourlyData"`
	PeakHours     []HourlyRevenue `json:"peakHours"`
}

type HourCount struct {
	Hour         int  `json:"hour"`
	BookingCount int  `json:"bookingCount"`
	IsPeak       bool `json:"isPeak"`
}

type WeekdayCount struct {
	Day          int    `json:"day"`
	DayName      string `json:"dayName"`
	BookingCount int    `json:"bookingCount"`
	IsWeekend    bool   `json:"isWeekend"`
}

type PeakReport struct {
	HourlyAnalysis   []HourCount    `json:"hourlyAnalysis"`
	WeekdayAnalysis  []WeekdayCount `json:"weekdayAnalysis"`
	PeakHours        []HourWindow   `json:"peakHours"`
	WeekendDays      []int          `json:"weekendDays"`
	UpcomingHolidays []string       `json:"upcomingHolidays"`
}

// History summarises fulfilled bookings created in [from, to]. Zero bounds default to
// the last seven days.
func (s *Service) History(ctx context.Context, zoneID types.ID, from, to time.Time) (*History, error) {
	if zoneID.Empty() {
		return nil, ErrBadRequest
	}
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.Add(-defaultHistoryWindow)
	}
	if to.Before(from) {
		return nil, ErrInvalidInterval
	}

	bookings, err := s.bookings.ListCreatedBetween(ctx, zoneID, from, to, booking.Fulfilled)
	if err != nil {
		return nil, err
	}

	hourly := make([]HourlyRevenue, 24)
	for h := range hourly {
		hourly[h].Hour = h
	}
	var total int64
	for _, b := range bookings {
		total += b.Amount
		h := s.rates.local(b.StartTime).Hour()
		hourly[h].BookingCount++
		hourly[h].TotalRevenue += b.Amount
	}
	for h := range hourly {
		if hourly[h].BookingCount > 0 {
			hourly[h].AveragePrice = float64(hourly[h].TotalRevenue) / float64(hourly[h].BookingCount)
		}
	}

	var average int64
	if len(bookings) > 0 {
		average = int64(math.Round(float64(total) / float64(len(bookings))))
	}

	var busiest []HourlyRevenue
	for _, h := range hourly {
		if h.BookingCount > 0 {
			busiest = append(busiest, h)
		}
	}
	sort.SliceStable(busiest, func(i, j int) bool {
		return busiest[i].BookingCount > busiest[j].BookingCount
	})
	if len(busiest) > topHours {
		busiest = busiest[:topHours]
	}

	return &History{
		Period:        Period{Start: from, End: to},
		TotalBookings: len(bookings),
		TotalRevenue:  total,
		AverageCost:   average,
		HourlyData:    hourly,
		PeakHours:     busiest,
	}, nil
}

// PeakHours reports the 30 days before now of fulfilled bookings by start hour and
// weekday, alongside the rate table's peak windows, weekend days and upcoming holidays.
func (s *Service) PeakHours(ctx context.Context, zoneID types.ID, now time.Time) (*PeakReport, error) {
	if zoneID.Empty() {
		return nil, ErrBadRequest
	}
	bookings, err := s.bookings.ListCreatedBetween(ctx, zoneID, now.Add(-peakAnalysisWindow), now, booking.Fulfilled)
	if err != nil {
		return nil, err
	}

	hourly := make([]HourCount, 24)
	for h := range hourly {
		hourly[h] = HourCount{Hour: h, IsPeak: s.rates.IsPeakHour(h)}
	}
	weekdays := make([]WeekdayCount, 7)
	for d := range weekdays {
		wd := time.Weekday(d)
		weekdays[d] = WeekdayCount{Day: d, DayName: wd.String(), IsWeekend: s.rates.IsWeekendDay(wd)}
	}
	for _, b := range bookings {
		lt := s.rates.local(b.StartTime)
		hourly[lt.Hour()].BookingCount++
		weekdays[lt.Weekday()].BookingCount++
	}

	weekend := make([]int, len(s.rates.WeekendDays))
	for i, d := range s.rates.WeekendDays {
		weekend[i] = int(d)
	}
	return &PeakReport{
		HourlyAnalysis:   hourly,
		WeekdayAnalysis:  weekdays,
		PeakHours:        s.rates.PeakWindows,
		WeekendDays:      weekend,
		UpcomingHolidays: s.rates.UpcomingHolidays(now),
	}, nil
}
