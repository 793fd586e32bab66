package scheduler

import "time"

// timeOffBlockFor returns the block covering resident on day, if any.
func timeOffBlockFor(residentID string, day time.Time, blocks []TimeOff) *TimeOff {
	for i := range blocks {
		b := &blocks[i]
		if b.ResidentID == residentID && sameOrBefore(b.StartDate, day) && sameOrBefore(day, b.EndDate) {
			return b
		}
	}
	return nil
}

// isTier0Restricted reports whether resident is barred from call-type
// shifts on day: tier-0 means zero prior OB months, and day falls in the
// configured early-month restricted-day set (default days 1-3).
func isTier0Restricted(resident Resident, day time.Time, c *Constraints) bool {
	return resident.OBMonthsCompleted == 0 && c.Tier0ProhibitionDays[day.Day()]
}
