package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeOffBlockFor_InsideWindow(t *testing.T) {
	blocks := []TimeOff{
		{ResidentID: "r1", StartDate: td(2024, time.January, 5), EndDate: td(2024, time.January, 7), BlockType: BTDay},
	}
	block := timeOffBlockFor("r1", td(2024, time.January, 6), blocks)
	assert.NotNil(t, block)
	assert.Equal(t, BTDay, block.BlockType)
}

func TestTimeOffBlockFor_OutsideWindow(t *testing.T) {
	blocks := []TimeOff{
		{ResidentID: "r1", StartDate: td(2024, time.January, 5), EndDate: td(2024, time.January, 7), BlockType: BTDay},
	}
	assert.Nil(t, timeOffBlockFor("r1", td(2024, time.January, 8), blocks))
	assert.Nil(t, timeOffBlockFor("r2", td(2024, time.January, 6), blocks))
}

func TestIsTier0Restricted(t *testing.T) {
	c := DefaultConstraints()
	tier0 := Resident{ID: "r1", Tier: 0, OBMonthsCompleted: 0}
	tier1 := Resident{ID: "r2", Tier: 1, OBMonthsCompleted: 0}
	experienced := Resident{ID: "r3", Tier: 0, OBMonthsCompleted: 2}

	assert.True(t, isTier0Restricted(tier0, td(2024, time.January, 2), c))
	assert.False(t, isTier0Restricted(tier0, td(2024, time.January, 10), c))
	assert.False(t, isTier0Restricted(tier1, td(2024, time.January, 2), c))
	assert.False(t, isTier0Restricted(experienced, td(2024, time.January, 2), c))
}
