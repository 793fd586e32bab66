package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_USFederal2026(t *testing.T) {
	holidays, err := Generate(2026, JurisdictionUSFederal)
	require.NoError(t, err)
	require.NotEmpty(t, holidays)

	byDate := map[string]string{}
	for _, h := range holidays {
		byDate[h.Date.Format("2006-01-02")] = h.Name
	}

	assert.Equal(t, "New Year's Day", byDate["2026-01-01"])
	// 2026-07-04 is a Saturday, observed on Friday 2026-07-03.
	assert.Equal(t, "Independence Day", byDate["2026-07-03"])
	// 2026-12-25 is a Friday; no weekend shift applies.
	assert.Equal(t, "Christmas Day", byDate["2026-12-25"])
	// Thanksgiving: 4th Thursday of November 2026 is Nov 26.
	assert.Equal(t, "Thanksgiving Day", byDate["2026-11-26"])
}

func TestGenerate_WeekendObservedShift(t *testing.T) {
	// 2022-01-01 was a Saturday, observed on the preceding Friday.
	holidays, err := Generate(2022, JurisdictionUSFederal)
	require.NoError(t, err)

	byDate := map[string]string{}
	for _, h := range holidays {
		byDate[h.Date.Format("2006-01-02")] = h.Name
	}
	assert.Equal(t, "New Year's Day", byDate["2021-12-31"])
}

func TestParseJurisdiction(t *testing.T) {
	j, err := ParseJurisdiction("US_FEDERAL")
	require.NoError(t, err)
	assert.Equal(t, JurisdictionUSFederal, j)
}

func TestGenerate_InvalidYear(t *testing.T) {
	_, err := Generate(1800, JurisdictionUSFederal)
	assert.Error(t, err)
}

func TestGenerate_InvalidJurisdiction(t *testing.T) {
	_, err := Generate(2026, Jurisdiction("XX"))
	assert.Error(t, err)
}
