package scheduler

import (
	"time"

	"github.com/nextmv-io/sdk/mip"
)

// objectiveTerms carries the pieces the result assembler needs after
// solving: the weekend-spread variable, undefined when hasWeekend is false.
// The unmet-request ledger is recomputed separately in result.go straight
// from bm.requests, not from anything built here — every input request gets
// a ledger entry regardless of whether the objective posted a penalty for it.
type objectiveTerms struct {
	weekendSpread mip.Float
	hasWeekend    bool
}

// buildObjective adds every soft-penalty term from spec.md §4.4 to bm's
// model, weighted per constraints.Weights, and returns the handles the
// result assembler needs to read back realized values.
func buildObjective(bm *builtModel, requests []Request) objectiveTerms {
	obj := bm.model.Objective()
	w := bm.constraints.Weights

	for _, slack := range bm.understaffSlack {
		obj.NewTerm(float64(*w.Understaff), slack)
	}

	addCallTargetPenalties(bm, obj, w)

	out := objectiveTerms{}
	out.weekendSpread, out.hasWeekend = addWeekendSpreadPenalty(bm, obj, w)
	addRequestPenalties(bm, obj, w, requests)

	return out
}

// addCallTargetPenalties posts the call-count-band penalty for each
// resident whose tier has a configured [low, high] band: under the band
// costs (low - count), over the band costs (count - high), both clamped to
// zero by pairing each with a minimized nonnegative slack variable.
func addCallTargetPenalties(bm *builtModel, obj mip.Objective, w Weights) {
	if *w.Call == 0 {
		return
	}
	n := float64(len(bm.days))

	for _, r := range bm.residents {
		band := bm.constraints.CallTargets[r.Tier]
		if band == nil {
			continue
		}

		callCount := bm.model.NewFloat(0, n)
		countEq := bm.model.NewConstraint(mip.Equal, 0.0)
		countEq.NewTerm(1.0, callCount)
		for _, d := range bm.days {
			countEq.NewTerm(-1.0, bm.v(r.ID, d, OBOC))
		}

		under := bm.model.NewFloat(0, n)
		underGE := bm.model.NewConstraint(mip.GreaterThanOrEqual, float64(band.Low))
		underGE.NewTerm(1.0, under)
		underGE.NewTerm(1.0, callCount)

		over := bm.model.NewFloat(0, n)
		overGE := bm.model.NewConstraint(mip.GreaterThanOrEqual, float64(-band.High))
		overGE.NewTerm(1.0, over)
		overGE.NewTerm(-1.0, callCount)

		obj.NewTerm(float64(*w.Call), under)
		obj.NewTerm(float64(*w.Call), over)
	}
}

// addWeekendSpreadPenalty posts the max-minus-min weekend-OC spread term.
// With zero or one resident, or no weekend days in range, the term is
// omitted entirely (spec.md §4.4: "zero when no weekend days exist or only
// one resident").
func addWeekendSpreadPenalty(bm *builtModel, obj mip.Objective, w Weights) (mip.Float, bool) {
	var weekend []time.Time
	for _, d := range bm.days {
		if isWeekend(d) {
			weekend = append(weekend, d)
		}
	}
	if len(weekend) == 0 || len(bm.residents) < 2 {
		return mip.Float{}, false
	}

	n := float64(len(bm.days))
	counts := make([]mip.Float, len(bm.residents))
	for i, r := range bm.residents {
		count := bm.model.NewFloat(0, n)
		eq := bm.model.NewConstraint(mip.Equal, 0.0)
		eq.NewTerm(1.0, count)
		for _, wd := range weekend {
			eq.NewTerm(-1.0, bm.v(r.ID, wd, OBOC))
		}
		counts[i] = count
	}

	maxVar := bm.model.NewFloat(0, n)
	minVar := bm.model.NewFloat(0, n)
	for _, count := range counts {
		maxGE := bm.model.NewConstraint(mip.GreaterThanOrEqual, 0.0)
		maxGE.NewTerm(1.0, maxVar)
		maxGE.NewTerm(-1.0, count)

		minLE := bm.model.NewConstraint(mip.LessThanOrEqual, 0.0)
		minLE.NewTerm(1.0, minVar)
		minLE.NewTerm(-1.0, count)
	}

	spread := bm.model.NewFloat(0, n)
	spreadEq := bm.model.NewConstraint(mip.Equal, 0.0)
	spreadEq.NewTerm(1.0, spread)
	spreadEq.NewTerm(-1.0, maxVar)
	spreadEq.NewTerm(1.0, minVar)

	if *w.Weekend != 0 {
		obj.NewTerm(float64(*w.Weekend), spread)
	}
	return spread, true
}

// addRequestPenalties posts one penalty variable per request whose window
// intersects the period (none at all when the request weight is 0), per
// spec.md §4.4 rule 4. PREFER_CALL is penalized
// when no OC falls in the window; AVOID_CALL and WEEKEND_OFF are penalized
// identically when any OC falls in the window. A request whose window falls
// entirely outside the period gets no variable here — it still gets a
// ledger entry, computed independently in result.go.
func addRequestPenalties(bm *builtModel, obj mip.Objective, w Weights, requests []Request) {
	for _, req := range requests {
		var window []time.Time
		for _, d := range bm.days {
			if !d.Before(req.StartDate) && !d.After(req.EndDate) {
				window = append(window, d)
			}
		}
		if len(window) == 0 {
			continue
		}

		if *w.Request == 0 {
			continue
		}

		callInWindow := bm.model.NewFloat(0, float64(len(window)))
		eq := bm.model.NewConstraint(mip.Equal, 0.0)
		eq.NewTerm(1.0, callInWindow)
		for _, d := range window {
			eq.NewTerm(-1.0, bm.v(req.ResidentID, d, OBOC))
		}

		// The penalty is a 0/1 indicator, not a clamped linear slack: it must
		// be exactly 1 (not some fraction of a unit) whenever the predicate
		// trips, so both directions use a Bool tied to callInWindow via a
		// big-M bound of len(window), the same trick CP-SAT's OnlyEnforceIf
		// gives for free.
		flag := bm.model.NewBool()
		m := float64(len(window))

		switch req.Kind {
		case PreferCall:
			// flag (not-met) forced to 1 when callInWindow == 0; allowed to
			// be 0 (cheaper) whenever callInWindow >= 1.
			ge := bm.model.NewConstraint(mip.GreaterThanOrEqual, 1.0)
			ge.NewTerm(m, flag)
			ge.NewTerm(1.0, callInWindow)
		default: // AvoidCall, WeekendOff
			// flag (violated) forced to 1 when callInWindow >= 1, since
			// callInWindow <= m*flag only holds at flag=0 when
			// callInWindow == 0.
			le := bm.model.NewConstraint(mip.LessThanOrEqual, 0.0)
			le.NewTerm(1.0, callInWindow)
			le.NewTerm(-m, flag)
		}

		obj.NewTerm(float64(*w.Request), flag)
	}
}
