package scheduler

// DayClass buckets a calendar day for coverage-requirement lookup.
type DayClass string

const (
	Weekday          DayClass = "weekday"
	Friday           DayClass = "friday"
	WeekendOrHoliday DayClass = "weekend_or_holiday"
)

// CoverageRequirement is the per-day-class target band for each shift kind.
type CoverageRequirement struct {
	OBOC     int
	OBL3     int
	OBL4     int
	OBDayMin int
	OBDayMax int
}

// CallTargetBand is an inclusive [Low, High] target range for a resident
// tier's call count over the period. A nil band (see CallTargets) disables
// the penalty for that tier.
type CallTargetBand struct {
	Low  int
	High int
}

// Weights are the nonnegative objective coefficients from spec.md §4.4. Each
// field is a pointer so resolve() can tell "caller didn't set this weight"
// (nil, falls back to default) apart from "caller explicitly set it to 0"
// (term disabled), the same per-field distinction Coverage and CallTargets
// already make.
type Weights struct {
	Understaff *int
	Call       *int
	Weekend    *int
	Request    *int
}

func intPtr(v int) *int {
	return &v
}

// Constraints is the typed configuration record the source's dynamic
// `constraints` dict is replaced with (spec.md §9, "Dynamic constraints
// dictionary"). Every field is defaulted independently, so a caller may
// override only the fields it cares about and DefaultConstraints()
// fills in the rest.
type Constraints struct {
	Coverage             map[DayClass]CoverageRequirement
	Tier0ProhibitionDays map[int]bool
	CallTargets          map[int]*CallTargetBand // keyed by tier; nil entry or absent tier disables
	Weights              Weights
}

// DefaultConstraints returns the spec's default coverage bands, tier-0
// restricted days, call-count target bands and objective weights.
func DefaultConstraints() *Constraints {
	return &Constraints{
		Coverage: map[DayClass]CoverageRequirement{
			Weekday:          {OBOC: 2, OBL3: 1, OBL4: 0, OBDayMin: 2, OBDayMax: 4},
			Friday:           {OBOC: 2, OBL3: 0, OBL4: 1, OBDayMin: 2, OBDayMax: 4},
			WeekendOrHoliday: {OBOC: 2, OBL3: 0, OBL4: 1, OBDayMin: 0, OBDayMax: 0},
		},
		Tier0ProhibitionDays: map[int]bool{1: true, 2: true, 3: true},
		CallTargets: map[int]*CallTargetBand{
			0: {Low: 6, High: 7},
			1: {Low: 6, High: 7},
			2: {Low: 5, High: 6},
			3: nil,
		},
		Weights: Weights{
			Understaff: intPtr(1000),
			Call:       intPtr(20),
			Weekend:    intPtr(5),
			Request:    intPtr(10),
		},
	}
}

// resolve fills every unset field of c from defaults, field by field, so a
// partially-populated override behaves per spec.md §6: "missing keys fall
// back to defaults." A nil receiver resolves to the plain defaults.
func (c *Constraints) resolve() *Constraints {
	def := DefaultConstraints()
	if c == nil {
		return def
	}

	resolved := &Constraints{
		Coverage:             c.Coverage,
		Tier0ProhibitionDays: c.Tier0ProhibitionDays,
		CallTargets:          c.CallTargets,
		Weights:              c.Weights,
	}

	if resolved.Coverage == nil {
		resolved.Coverage = def.Coverage
	} else {
		for class, req := range def.Coverage {
			if _, ok := resolved.Coverage[class]; !ok {
				resolved.Coverage[class] = req
			}
		}
	}

	if resolved.Tier0ProhibitionDays == nil {
		resolved.Tier0ProhibitionDays = def.Tier0ProhibitionDays
	}

	if resolved.CallTargets == nil {
		resolved.CallTargets = def.CallTargets
	}

	if resolved.Weights.Understaff == nil {
		resolved.Weights.Understaff = def.Weights.Understaff
	}
	if resolved.Weights.Call == nil {
		resolved.Weights.Call = def.Weights.Call
	}
	if resolved.Weights.Weekend == nil {
		resolved.Weights.Weekend = def.Weights.Weekend
	}
	if resolved.Weights.Request == nil {
		resolved.Weights.Request = def.Weights.Request
	}

	return resolved
}

func (c *Constraints) coverageFor(class DayClass) CoverageRequirement {
	if req, ok := c.Coverage[class]; ok {
		return req
	}
	return DefaultConstraints().Coverage[class]
}
