// README: Hour-aligned walk over a booking interval.
package pricing

import "time"

// Segment is the part of an interval inside one local clock hour.
type Segment struct {
	Start      time.Time
	End        time.Time
	Minutes    float64
	Conditions Conditions
	Rate       int64
}

// DurationMinutes is the billed duration: elapsed time rounded up to whole minutes.
func DurationMinutes(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	mins := int64(d / time.Minute)
	if d%time.Minute != 0 {
		mins++
	}
	return mins
}

// Segments splits [start, end) at each top of the hour in the table's location.
// Rates are taken from each segment's start. The sub-minute remainder billed by
// DurationMinutes is added to the last segment, so segment minutes always sum to
// DurationMinutes(start, end).
func (rt RateTable) Segments(start, end time.Time) []Segment {
	if !end.After(start) {
		return nil
	}
	var segs []Segment
	var covered float64
	for cur := start; cur.Before(end); {
		next := rt.nextHour(cur)
		if next.After(end) {
			next = end
		}
		cond := rt.ConditionsAt(cur)
		mins := next.Sub(cur).Minutes()
		segs = append(segs, Segment{
			Start:      cur,
			End:        next,
			Minutes:    mins,
			Conditions: cond,
			Rate:       rt.RateFor(cond),
		})
		covered += mins
		cur = next
	}
	last := &segs[len(segs)-1]
	last.Minutes = float64(DurationMinutes(start, end)) - (covered - last.Minutes)
	return segs
}

// nextHour is the next instant after t whose local wall clock reads hh:00, using the
// offset in force at t. On a DST change the new offset takes over from the following
// segment, so no segment spans more than one local hour.
func (rt RateTable) nextHour(t time.Time) time.Time {
	_, offset := rt.local(t).Zone()
	wall := t.Unix() + int64(offset)
	boundary := wall - wall%3600 + 3600
	if wall < 0 && wall%3600 != 0 {
		boundary -= 3600
	}
	return time.Unix(boundary-int64(offset), 0).In(t.Location())
}
