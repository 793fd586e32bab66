package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfberenson/ob-resident-scheduler/internal/scheduler"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func residents(n int, tier int, monthsCompleted int) []scheduler.Resident {
	out := make([]scheduler.Resident, n)
	for i := range out {
		out[i] = scheduler.Resident{ID: letterID(i), Tier: tier, OBMonthsCompleted: monthsCompleted}
	}
	return out
}

func letterID(i int) string {
	return string(rune('A' + i))
}

func countsByShift(out scheduler.GenerationOutput, date time.Time, shift scheduler.ShiftType) []string {
	var who []string
	for _, a := range out.Assignments {
		if a.Date.Equal(date) && a.ShiftType == shift {
			who = append(who, a.ResidentID)
		}
	}
	return who
}

func hasAlert(out scheduler.GenerationOutput, substr string) bool {
	for _, a := range out.Alerts {
		if a.Message == substr {
			return true
		}
	}
	return false
}

// S1 — Minimum weekday OC pairing.
func TestGenerate_S1_MinimumWeekdayOCPairing(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 2),
		EndDate:   day(2024, time.January, 2),
		Residents: residents(5, 1, 1),
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	oc := countsByShift(out, day(2024, time.January, 2), scheduler.OBOC)
	assert.GreaterOrEqual(t, len(oc), 2)
	assert.True(t, hasAlert(out, "Understaffed OB_L3 coverage."))

	l3 := countsByShift(out, day(2024, time.January, 2), scheduler.OBL3)
	assert.Empty(t, l3, "a single-day period can never satisfy L3's next-day-OC pairing")
}

// S2 — Weekday + postcall chain.
func TestGenerate_S2_WeekdayPostcallChain(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 2),
		EndDate:   day(2024, time.January, 3),
		Residents: residents(6, 1, 1),
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	day1 := day(2024, time.January, 2)
	day2 := day(2024, time.January, 3)

	ocDay1 := countsByShift(out, day1, scheduler.OBOC)
	l3Day1 := countsByShift(out, day1, scheduler.OBL3)
	assert.Len(t, ocDay1, 2)
	assert.Len(t, l3Day1, 1)

	ocDay2 := countsByShift(out, day2, scheduler.OBOC)
	for _, r := range l3Day1 {
		assert.Contains(t, ocDay2, r, "every day-1 OB_L3 resident must hold OB_OC on day 2")
	}

	postcallDay2 := countsByShift(out, day2, scheduler.OBPostcall)
	for _, r := range ocDay1 {
		assert.Contains(t, postcallDay2, r, "every day-1 OB_OC resident must hold OB_POSTCALL on day 2")
	}
}

// S3 — Time-off passthrough.
func TestGenerate_S3_TimeOffPassthrough(t *testing.T) {
	d := day(2024, time.January, 6)
	input := scheduler.ScheduleInput{
		StartDate: d,
		EndDate:   d,
		Residents: residents(1, 1, 1),
		TimeOff: []scheduler.TimeOff{
			{ResidentID: "A", StartDate: d, EndDate: d, BlockType: scheduler.BTDay},
		},
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	require.Len(t, out.Assignments, 1)
	assert.Equal(t, scheduler.Assignment{ResidentID: "A", Date: d, ShiftType: scheduler.BTDay}, out.Assignments[0])

	assert.True(t, hasAlert(out, "Understaffed OB_OC coverage."))
	assert.True(t, hasAlert(out, "Understaffed OB_L4 coverage."))
}

// S4 — Holiday treated as weekend.
func TestGenerate_S4_HolidayTreatedAsWeekend(t *testing.T) {
	d := day(2024, time.January, 15)
	input := scheduler.ScheduleInput{
		StartDate: d,
		EndDate:   d,
		Residents: residents(3, 1, 1),
		Holidays:  map[string]bool{"2024-01-15": true},
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	l4 := countsByShift(out, d, scheduler.OBL4)
	assert.GreaterOrEqual(t, len(l4), 1)
	assert.Empty(t, countsByShift(out, d, scheduler.OBDay), "day_max is 0 on a holiday")
}

// S5 — Tier-0 early-month prohibition.
func TestGenerate_S5_Tier0EarlyMonthProhibition(t *testing.T) {
	roster := residents(5, 1, 1)
	roster = append(roster, scheduler.Resident{ID: "Z", Tier: 0, OBMonthsCompleted: 0})

	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 3),
		Residents: roster,
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	for _, a := range out.Assignments {
		if a.ResidentID != "Z" {
			continue
		}
		if a.Date.Day() == 2 || a.Date.Day() == 3 {
			assert.Equal(t, scheduler.OBDay, a.ShiftType, "tier-0 resident may only hold OB_DAY on a restricted day")
		}
	}
}

// S6 — Avoid-call request honored when slack allows.
func TestGenerate_S6_AvoidCallHonoredWhenSlackAllows(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 8),
		EndDate:   day(2024, time.January, 14),
		Residents: residents(8, 1, 1),
		Requests: []scheduler.Request{
			{ResidentID: "A", Kind: scheduler.AvoidCall, StartDate: day(2024, time.January, 9), EndDate: day(2024, time.January, 10)},
		},
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	for _, a := range out.Assignments {
		if a.ResidentID == "A" && a.ShiftType == scheduler.OBOC {
			assert.NotEqual(t, 9, a.Date.Day())
			assert.NotEqual(t, 10, a.Date.Day())
		}
	}

	require.Len(t, out.UnmetRequests, 1)
	assert.True(t, out.UnmetRequests[0].Met)
}

func TestGenerate_UnmetLedger_CoversRequestOutsidePeriod(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 8),
		EndDate:   day(2024, time.January, 14),
		Residents: residents(8, 1, 1),
		Requests: []scheduler.Request{
			{ResidentID: "A", Kind: scheduler.PreferCall, StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 2)},
			{ResidentID: "B", Kind: scheduler.AvoidCall, StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 2)},
		},
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	require.Len(t, out.UnmetRequests, 2)

	var prefer, avoid *scheduler.UnmetRequest
	for i := range out.UnmetRequests {
		switch out.UnmetRequests[i].ResidentID {
		case "A":
			prefer = &out.UnmetRequests[i]
		case "B":
			avoid = &out.UnmetRequests[i]
		}
	}
	require.NotNil(t, prefer)
	require.NotNil(t, avoid)

	// A window with zero overlapping days realizes a call count of 0:
	// PREFER_CALL is unmet (no call happened), AVOID_CALL/WEEKEND_OFF are
	// trivially met (no call happened).
	assert.False(t, prefer.Met)
	assert.True(t, avoid.Met)
}

func TestGenerate_EmptyRoster_OneAlertPerDay(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 3),
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	assert.Len(t, out.Alerts, 3)
	for _, a := range out.Alerts {
		assert.Equal(t, "No residents available for coverage.", a.Message)
		assert.Equal(t, scheduler.SeverityHigh, a.Severity)
	}
	assert.Empty(t, out.Assignments)
}

func TestGenerate_InputShape_InvertedDateRange(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 5),
		EndDate:   day(2024, time.January, 1),
		Residents: residents(1, 1, 1),
	}

	_, err := scheduler.Generate(input)
	assert.ErrorIs(t, err, scheduler.ErrInputShape)
}

func TestGenerate_InputShape_RequestForUnknownResident(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 2),
		Residents: residents(1, 1, 1),
		Requests: []scheduler.Request{
			{ResidentID: "ghost", Kind: scheduler.PreferCall, StartDate: day(2024, time.January, 1), EndDate: day(2024, time.January, 1)},
		},
	}

	_, err := scheduler.Generate(input)
	assert.ErrorIs(t, err, scheduler.ErrInputShape)
}

func TestGenerate_InputShape_TimeOffForUnknownResident(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 2),
		Residents: residents(1, 1, 1),
		TimeOff: []scheduler.TimeOff{
			{ResidentID: "ghost", StartDate: day(2024, time.January, 1), EndDate: day(2024, time.January, 1), BlockType: scheduler.BTDay},
		},
	}

	_, err := scheduler.Generate(input)
	assert.ErrorIs(t, err, scheduler.ErrInputShape)
}

// Invariant 1: at most one assignment per (resident, date).
func TestGenerate_Invariant_AtMostOneAssignmentPerResidentDay(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 7),
		Residents: residents(6, 1, 1),
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, a := range out.Assignments {
		key := a.ResidentID + "|" + a.Date.Format("2006-01-02")
		assert.False(t, seen[key], "duplicate assignment for %s", key)
		seen[key] = true
	}
}

// Invariant 6: every fairness count is present for every resident, even
// residents who never held OB_OC.
func TestGenerate_Invariant_FairnessCountsCoverWholeRoster(t *testing.T) {
	input := scheduler.ScheduleInput{
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 2),
		Residents: residents(5, 1, 1),
	}

	out, err := scheduler.Generate(input)
	require.NoError(t, err)

	for _, r := range input.Residents {
		_, ok := out.Fairness.OBOCCounts[r.ID]
		assert.True(t, ok, "missing fairness count for resident %s", r.ID)
	}
}
