package scheduler

// assembleResult extracts assignments from the solved model, recounts
// per-day coverage independently of the slack variables (spec.md §4.5: "The
// recount is independent of the slack variables to guard against solver
// rounding"), and builds the fairness report and unmet-request ledger.
func assembleResult(bm *builtModel, sr solveResult, terms objectiveTerms) GenerationOutput {
	out := GenerationOutput{
		Alerts: append([]Alert{}, bm.alerts...),
		Fairness: FairnessReport{
			OBOCCounts: make(map[string]int, len(bm.residents)),
		},
	}

	out.Assignments = append(out.Assignments, bm.passthrough...)

	for _, r := range bm.residents {
		out.Fairness.OBOCCounts[r.ID] = 0
	}

	for _, r := range bm.residents {
		for _, d := range bm.days {
			for _, s := range scheduledShiftTypes {
				if sr.value(bm.v(r.ID, d, s)) {
					out.Assignments = append(out.Assignments, Assignment{ResidentID: r.ID, Date: d, ShiftType: s})
					if s == OBOC {
						out.Fairness.OBOCCounts[r.ID]++
					}
				}
			}
		}
	}

	if terms.hasWeekend {
		out.Fairness.WeekendOBOCSpread = int(sr.floatVal(terms.weekendSpread) + 0.5)
	}

	out.Alerts = append(out.Alerts, recountAlerts(bm, sr)...)
	out.UnmetRequests = buildUnmetLedger(bm, sr)

	return out
}

// recountAlerts recomputes realized coverage per day straight from the
// boolean assignment variables (never from the slack variables) and emits
// one HIGH alert per shortage, per spec.md §4.5.
func recountAlerts(bm *builtModel, sr solveResult) []Alert {
	var alerts []Alert

	for _, d := range bm.days {
		req := requirementsFor(d, bm.holidays, bm.constraints)

		var oc, l3, l4, day int
		for _, r := range bm.residents {
			if sr.value(bm.v(r.ID, d, OBOC)) {
				oc++
			}
			if sr.value(bm.v(r.ID, d, OBL3)) {
				l3++
			}
			if sr.value(bm.v(r.ID, d, OBL4)) {
				l4++
			}
			if sr.value(bm.v(r.ID, d, OBDay)) {
				day++
			}
		}

		if oc < req.OBOC {
			alerts = append(alerts, Alert{Date: d, Message: "Understaffed OB_OC coverage.", Severity: SeverityHigh})
		}
		if req.OBL3 > 0 && l3 < req.OBL3 {
			alerts = append(alerts, Alert{Date: d, Message: "Understaffed OB_L3 coverage.", Severity: SeverityHigh})
		}
		if req.OBL4 > 0 && l4 < req.OBL4 {
			alerts = append(alerts, Alert{Date: d, Message: "Understaffed OB_L4 coverage.", Severity: SeverityHigh})
		}
		if req.OBDayMin > 0 && day < req.OBDayMin {
			alerts = append(alerts, Alert{Date: d, Message: "Understaffed OB_DAY coverage.", Severity: SeverityHigh})
		}
	}

	return alerts
}

// buildUnmetLedger computes one entry per input request (spec.md §4.5/§6:
// "one entry per input request"), not just requests whose window intersects
// the period — a request entirely outside the period still gets a verdict,
// with an empty window contributing a realized call count of zero. Per
// spec.md §4.5: PREFER_CALL is met iff at least one OC fell in the window;
// AVOID_CALL and WEEKEND_OFF are met iff none did.
func buildUnmetLedger(bm *builtModel, sr solveResult) []UnmetRequest {
	ledger := make([]UnmetRequest, 0, len(bm.requests))

	for _, req := range bm.requests {
		callCount := 0
		for _, d := range bm.days {
			if d.Before(req.StartDate) || d.After(req.EndDate) {
				continue
			}
			if sr.value(bm.v(req.ResidentID, d, OBOC)) {
				callCount++
			}
		}

		var met bool
		if req.Kind == PreferCall {
			met = callCount >= 1
		} else {
			met = callCount == 0
		}

		ledger = append(ledger, UnmetRequest{
			ResidentID:  req.ResidentID,
			RequestType: req.Kind,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Met:         met,
		})
	}

	return ledger
}
