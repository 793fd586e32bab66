package scheduler

import (
	"time"

	"github.com/nextmv-io/sdk/mip"
)

// varKey indexes one boolean decision variable: did resident get shift on
// day. Every (resident, day, scheduled shift) triple gets a key, time-off
// days included: shifts a time-off day excludes are forced to zero by a
// posted constraint instead of being omitted, so that result extraction can
// uniformly range over every triple.
type varKey struct {
	residentID string
	day        string
	shift      ShiftType
}

// builtModel holds everything the objective builder and solver driver need
// after the hard constraints have been posted.
type builtModel struct {
	model mip.Model
	x     map[varKey]mip.Bool

	residents   []Resident
	days        []time.Time
	holidays    map[string]bool
	constraints *Constraints
	requests    []Request

	// understaffSlack accumulates every slack variable posted for coverage,
	// for the objective's understaff term.
	understaffSlack []mip.Float

	// passthrough holds the time-off assignments emitted outside the model.
	passthrough []Assignment
	// alerts accumulates tier0/time-off conflict alerts raised while
	// building hard constraints, surfaced verbatim in the final output.
	alerts []Alert
}

// buildModel materializes decision variables and posts every hard
// constraint from spec.md §4.3: one-shift-per-day, L3-to-next-day-OC
// pairing, postcall linkage, tier-0 and time-off exclusions, and bounded
// coverage with slack.
func buildModel(input ScheduleInput, c *Constraints) *builtModel {
	m := mip.NewModel()
	m.Objective().SetMinimize()

	days := daysInRange(input.StartDate, input.EndDate)
	dayIndex := make(map[string]int, len(days))
	for i, d := range days {
		dayIndex[dateKey(d)] = i
	}

	bm := &builtModel{
		model:       m,
		x:           make(map[varKey]mip.Bool, len(input.Residents)*len(days)*len(scheduledShiftTypes)),
		residents:   input.Residents,
		days:        days,
		holidays:    input.Holidays,
		constraints: c,
		requests:    input.Requests,
	}

	for _, r := range input.Residents {
		for _, d := range days {
			for _, s := range scheduledShiftTypes {
				bm.x[varKey{r.ID, dateKey(d), s}] = m.NewBool()
			}
		}
	}

	bm.postPerResidentConstraints(input.TimeOff)
	bm.postCoverageConstraints()
	bm.postPostcallLinkage()

	return bm
}

func (bm *builtModel) v(residentID string, day time.Time, shift ShiftType) mip.Bool {
	return bm.x[varKey{residentID, dateKey(day), shift}]
}

// postPerResidentConstraints posts, per (resident, day): the one-shift cap,
// the L3-pairs-to-next-day-OC rule, and the tier-0/time-off exclusions.
func (bm *builtModel) postPerResidentConstraints(timeOff []TimeOff) {
	lastDay := bm.days[len(bm.days)-1]

	for _, r := range bm.residents {
		for _, d := range bm.days {
			atMostOne := bm.model.NewConstraint(mip.LessThanOrEqual, 1.0)
			for _, s := range scheduledShiftTypes {
				atMostOne.NewTerm(1.0, bm.v(r.ID, d, s))
			}

			nextDay := d.AddDate(0, 0, 1)
			if !nextDay.After(lastDay) {
				pairing := bm.model.NewConstraint(mip.LessThanOrEqual, 0.0)
				pairing.NewTerm(1.0, bm.v(r.ID, d, OBL3))
				pairing.NewTerm(-1.0, bm.v(r.ID, nextDay, OBOC))
			} else {
				forbidL3 := bm.model.NewConstraint(mip.Equal, 0.0)
				forbidL3.NewTerm(1.0, bm.v(r.ID, d, OBL3))
			}

			block := timeOffBlockFor(r.ID, d, timeOff)
			tier0 := isTier0Restricted(r, d, bm.constraints)

			if block != nil {
				if tier0 {
					bm.alerts = append(bm.alerts, Alert{
						Date:     d,
						Message:  "Tier0 resident cannot be assigned BT shifts on days 1-3",
						Severity: SeverityHigh,
					})
					// The call-type shifts are zeroed below; OB_DAY is
					// zeroed here so the resident gets no assignment at all.
					dayOff := bm.model.NewConstraint(mip.Equal, 0.0)
					dayOff.NewTerm(1.0, bm.v(r.ID, d, OBDay))
				} else {
					zero := bm.model.NewConstraint(mip.Equal, 0.0)
					for _, s := range scheduledShiftTypes {
						zero.NewTerm(1.0, bm.v(r.ID, d, s))
					}
					bm.passthrough = append(bm.passthrough, Assignment{
						ResidentID: r.ID,
						Date:       d,
						ShiftType:  block.BlockType,
					})
				}
			}

			if tier0 {
				for _, s := range []ShiftType{OBL3, OBOC, OBL4, OBPostcall} {
					zero := bm.model.NewConstraint(mip.Equal, 0.0)
					zero.NewTerm(1.0, bm.v(r.ID, d, s))
				}
			}
		}
	}
}

// postCoverageConstraints posts, per day, the bounded coverage equalities
// and inequalities from spec.md §4.3 rule 5, creating one slack variable
// per positive requirement.
func (bm *builtModel) postCoverageConstraints() {
	for _, d := range bm.days {
		req := requirementsFor(d, bm.holidays, bm.constraints)

		slackOC := bm.model.NewFloat(0, float64(req.OBOC))
		ocEq := bm.model.NewConstraint(mip.Equal, float64(req.OBOC))
		for _, r := range bm.residents {
			ocEq.NewTerm(1.0, bm.v(r.ID, d, OBOC))
		}
		ocEq.NewTerm(1.0, slackOC)
		bm.understaffSlack = append(bm.understaffSlack, slackOC)

		if req.OBL3 > 0 {
			slackL3 := bm.model.NewFloat(0, float64(req.OBL3))
			eq := bm.model.NewConstraint(mip.Equal, float64(req.OBL3))
			for _, r := range bm.residents {
				eq.NewTerm(1.0, bm.v(r.ID, d, OBL3))
			}
			eq.NewTerm(1.0, slackL3)
			bm.understaffSlack = append(bm.understaffSlack, slackL3)
		} else {
			zero := bm.model.NewConstraint(mip.Equal, 0.0)
			for _, r := range bm.residents {
				zero.NewTerm(1.0, bm.v(r.ID, d, OBL3))
			}
		}

		if req.OBL4 > 0 {
			slackL4 := bm.model.NewFloat(0, float64(req.OBL4))
			eq := bm.model.NewConstraint(mip.Equal, float64(req.OBL4))
			for _, r := range bm.residents {
				eq.NewTerm(1.0, bm.v(r.ID, d, OBL4))
			}
			eq.NewTerm(1.0, slackL4)
			bm.understaffSlack = append(bm.understaffSlack, slackL4)
		} else {
			zero := bm.model.NewConstraint(mip.Equal, 0.0)
			for _, r := range bm.residents {
				zero.NewTerm(1.0, bm.v(r.ID, d, OBL4))
			}
		}

		if req.OBDayMin > 0 {
			slackDay := bm.model.NewFloat(0, float64(req.OBDayMin))
			eq := bm.model.NewConstraint(mip.Equal, float64(req.OBDayMin))
			for _, r := range bm.residents {
				eq.NewTerm(1.0, bm.v(r.ID, d, OBDay))
			}
			eq.NewTerm(1.0, slackDay)
			bm.understaffSlack = append(bm.understaffSlack, slackDay)

			max := bm.model.NewConstraint(mip.LessThanOrEqual, float64(req.OBDayMax))
			for _, r := range bm.residents {
				max.NewTerm(1.0, bm.v(r.ID, d, OBDay))
			}
		} else {
			zero := bm.model.NewConstraint(mip.Equal, 0.0)
			for _, r := range bm.residents {
				zero.NewTerm(1.0, bm.v(r.ID, d, OBDay))
			}
		}
	}
}

// postPostcallLinkage posts spec.md §4.3 rule 3: OB_POSTCALL on d+1 exactly
// equals OB_OC+OB_L4 on d, for every resident and every day with a
// successor in range.
func (bm *builtModel) postPostcallLinkage() {
	for i, d := range bm.days {
		if i+1 >= len(bm.days) {
			continue
		}
		nextDay := bm.days[i+1]
		for _, r := range bm.residents {
			eq := bm.model.NewConstraint(mip.Equal, 0.0)
			eq.NewTerm(1.0, bm.v(r.ID, nextDay, OBPostcall))
			eq.NewTerm(-1.0, bm.v(r.ID, d, OBOC))
			eq.NewTerm(-1.0, bm.v(r.ID, d, OBL4))
		}
	}
}
