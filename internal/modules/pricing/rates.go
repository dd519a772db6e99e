// README: Fixed pricing policy table (per-minute rates, peak windows, weekend days, holidays).
package pricing

import (
	"sort"
	"time"
)

// HourWindow is a half-open [Start, End) range of local clock hours.
type HourWindow struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (w HourWindow) Contains(hour int) bool {
	return hour >= w.Start && hour < w.End
}

// Conditions are the rate conditions that apply at one instant.
type Conditions struct {
	Peak    bool
	Weekend bool
	Holiday bool
}

// RateTable is the whole pricing policy. Rates are whole currency units per minute.
type RateTable struct {
	Normal  int64
	Peak    int64
	Weekend int64
	Holiday int64

	PeakWindows []HourWindow
	WeekendDays []time.Weekday
	// Holidays maps yyyy-mm-dd to a display name.
	Holidays map[string]string

	Location *time.Location
}

func DefaultRateTable(loc *time.Location) RateTable {
	if loc == nil {
		loc = time.UTC
	}
	return RateTable{
		Normal:  2,
		Peak:    4,
		Weekend: 3,
		Holiday: 5,
		PeakWindows: []HourWindow{
			{Name: "morning", Start: 8, End: 10},
			{Name: "evening", Start: 17, End: 20},
		},
		WeekendDays: []time.Weekday{time.Sunday, time.Saturday},
		Holidays: map[string]string{
			"2025-01-26": "Republic Day",
			"2025-03-13": "Holi",
			"2025-08-15": "Independence Day",
			"2025-10-02": "Gandhi Jayanti",
			"2025-10-24": "Dussehra",
			"2025-11-12": "Diwali",
			"2025-12-25": "Christmas",
			"2026-01-26": "Republic Day",
			"2026-03-04": "Holi",
			"2026-08-15": "Independence Day",
			"2026-10-02": "Gandhi Jayanti",
			"2026-10-20": "Dussehra",
			"2026-11-08": "Diwali",
			"2026-12-25": "Christmas",
		},
		Location: loc,
	}
}

func (rt RateTable) local(t time.Time) time.Time {
	if rt.Location == nil {
		return t
	}
	return t.In(rt.Location)
}

func (rt RateTable) IsPeakHour(hour int) bool {
	for _, w := range rt.PeakWindows {
		if w.Contains(hour) {
			return true
		}
	}
	return false
}

func (rt RateTable) IsWeekendDay(d time.Weekday) bool {
	for _, wd := range rt.WeekendDays {
		if wd == d {
			return true
		}
	}
	return false
}

func (rt RateTable) IsWeekend(t time.Time) bool {
	return rt.IsWeekendDay(rt.local(t).Weekday())
}

func (rt RateTable) IsHoliday(t time.Time) bool {
	_, ok := rt.Holidays[rt.local(t).Format(time.DateOnly)]
	return ok
}

func (rt RateTable) ConditionsAt(t time.Time) Conditions {
	lt := rt.local(t)
	return Conditions{
		Peak:    rt.IsPeakHour(lt.Hour()),
		Weekend: rt.IsWeekendDay(lt.Weekday()),
		Holiday: rt.IsHoliday(lt),
	}
}

// RateFor applies precedence: holiday wins outright, otherwise the highest of the
// peak and weekend rates that apply, otherwise normal.
func (rt RateTable) RateFor(c Conditions) int64 {
	if c.Holiday {
		return rt.Holiday
	}
	rate := rt.Normal
	if c.Peak {
		rate = rt.Peak
	}
	if c.Weekend && rt.Weekend > rate {
		rate = rt.Weekend
	}
	return rate
}

func (rt RateTable) RateAt(t time.Time) int64 {
	return rt.RateFor(rt.ConditionsAt(t))
}

// UpcomingHolidays returns holiday dates strictly after now's local date, sorted.
func (rt RateTable) UpcomingHolidays(now time.Time) []string {
	today := rt.local(now).Format(time.DateOnly)
	var out []string
	for d := range rt.Holidays {
		if d > today {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}
