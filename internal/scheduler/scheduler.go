package scheduler

import (
	"fmt"
	"time"
)

// Generate computes one monthly on-call schedule. It is a pure function of
// input: nothing here persists across calls, and no solver-library state is
// shared with a concurrent call.
//
// InputShape problems (an inverted date range, or a request/time-off block
// naming a resident outside the roster) are returned as an error, per
// spec.md §7 — every other domain condition, including an empty roster or
// an infeasible solve, is folded into the returned GenerationOutput as
// alerts instead of failing the call.
func Generate(input ScheduleInput) (GenerationOutput, error) {
	if err := validateInputShape(input); err != nil {
		return GenerationOutput{}, err
	}

	days := daysInRange(input.StartDate, input.EndDate)

	if len(input.Residents) == 0 {
		alerts := make([]Alert, 0, len(days))
		for _, d := range days {
			alerts = append(alerts, Alert{Date: d, Message: "No residents available for coverage.", Severity: SeverityHigh})
		}
		return GenerationOutput{Alerts: alerts, Fairness: FairnessReport{OBOCCounts: map[string]int{}}}, nil
	}

	constraints := input.Constraints.resolve()
	if input.Holidays == nil {
		input.Holidays = map[string]bool{}
	}

	bm := buildModel(input, constraints)
	terms := buildObjective(bm, input.Requests)

	sr, err := solve(bm, DefaultSolveBudget)
	if err != nil {
		return infeasibleResult(input.StartDate), nil
	}
	if !sr.found {
		return infeasibleResult(input.StartDate), nil
	}

	return assembleResult(bm, sr, terms), nil
}

// infeasibleResult is the fixed shape spec.md §4.5/§7 require when the
// solver returns neither OPTIMAL nor FEASIBLE: no model-derived assignments
// (even queued time-off passthroughs are dropped), one HIGH alert on the
// period's start date, empty fairness, empty unmet ledger.
func infeasibleResult(start time.Time) GenerationOutput {
	return GenerationOutput{
		Alerts:   []Alert{{Date: start, Message: "Solver infeasible", Severity: SeverityHigh}},
		Fairness: FairnessReport{OBOCCounts: map[string]int{}},
	}
}

// validateInputShape implements spec.md §7's InputShape taxonomy: a
// programmer error the engine fails fast on rather than folding into
// alerts.
func validateInputShape(input ScheduleInput) error {
	if input.StartDate.After(input.EndDate) {
		return fmt.Errorf("%w: start_date %s is after end_date %s", ErrInputShape, dateKey(input.StartDate), dateKey(input.EndDate))
	}

	residentIDs := make(map[string]bool, len(input.Residents))
	for _, r := range input.Residents {
		residentIDs[r.ID] = true
	}

	for _, req := range input.Requests {
		if !residentIDs[req.ResidentID] {
			return fmt.Errorf("%w: request references unknown resident %q", ErrInputShape, req.ResidentID)
		}
		if req.StartDate.After(req.EndDate) {
			return fmt.Errorf("%w: request window for resident %q is inverted", ErrInputShape, req.ResidentID)
		}
	}

	for _, to := range input.TimeOff {
		if !residentIDs[to.ResidentID] {
			return fmt.Errorf("%w: time off references unknown resident %q", ErrInputShape, to.ResidentID)
		}
		if to.StartDate.After(to.EndDate) {
			return fmt.Errorf("%w: time off window for resident %q is inverted", ErrInputShape, to.ResidentID)
		}
	}

	return nil
}
