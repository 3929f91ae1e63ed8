package service

import "time"

// Clock stamps writes with the current time in the board's fixed timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock returns a Clock in loc. now defaults to time.Now.
func NewClock(loc *time.Location, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{loc: loc, now: now}
}

// Now is truncated to microseconds, the finest precision both stores keep.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc).Truncate(time.Microsecond)
}

// Local converts a stored timestamp into the board's timezone for display.
func (c *Clock) Local(t time.Time) time.Time {
	return t.In(c.loc)
}
