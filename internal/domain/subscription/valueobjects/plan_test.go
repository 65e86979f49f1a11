package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan_ValidValues(t *testing.T) {
	for _, raw := range []string{"monthly", "quarterly", "semiannual", "annual"} {
		p, err := ParsePlan(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, p.String())
		assert.True(t, p.IsValid())
	}
}

func TestParsePlan_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "weekly", "MONTHLY", "mensal", "lifetime"} {
		_, err := ParsePlan(raw)
		assert.Error(t, err, "plan %q should be rejected", raw)
	}
}

func TestPlan_DefaultPriceCents(t *testing.T) {
	assert.Equal(t, uint64(15000), PlanMonthly.DefaultPriceCents())
	assert.Equal(t, uint64(40000), PlanQuarterly.DefaultPriceCents())
	assert.Equal(t, uint64(75000), PlanSemiannual.DefaultPriceCents())
	assert.Equal(t, uint64(140000), PlanAnnual.DefaultPriceCents())
}

func TestPlan_NextExpiration(t *testing.T) {
	base := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		plan Plan
		want time.Time
	}{
		{PlanMonthly, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)},
		{PlanQuarterly, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)},
		{PlanSemiannual, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)},
		{PlanAnnual, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.plan.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.NextExpiration(base))
		})
	}
}

func TestPlan_NextExpiration_ClampsEndOfMonth(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		PlanMonthly.NextExpiration(jan31))

	jan31NonLeap := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		PlanMonthly.NextExpiration(jan31NonLeap))

	aug31 := time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
		PlanQuarterly.NextExpiration(aug31))

	feb29 := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		PlanAnnual.NextExpiration(feb29))
}
