package scheduler

import "time"

// requirementsFor resolves the coverage band for a single day, given the
// holiday set and the (already-defaulted) constraints.
func requirementsFor(day time.Time, holidays map[string]bool, c *Constraints) CoverageRequirement {
	return c.coverageFor(classify(day, holidays))
}
