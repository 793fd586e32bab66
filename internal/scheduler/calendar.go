package scheduler

import "time"

// classify buckets a day for coverage-requirement lookup, per spec.md §4.1:
// weekend or hospital-flagged holiday first, then Friday, else a plain
// weekday.
func classify(day time.Time, holidays map[string]bool) DayClass {
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday || holidays[dateKey(day)] {
		return WeekendOrHoliday
	}
	if day.Weekday() == time.Friday {
		return Friday
	}
	return Weekday
}

func isWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}
