package valueobjects

import (
	"fmt"
	"time"

	"github.com/castellan-host/castellan/internal/shared/biztime"
)

// Plan is the billing-cycle category of a bot entitlement. It determines
// both the catalog price and the expiration increment.
type Plan string

const (
	PlanMonthly    Plan = "monthly"
	PlanQuarterly  Plan = "quarterly"
	PlanSemiannual Plan = "semiannual"
	PlanAnnual     Plan = "annual"
)

var ValidPlans = map[Plan]bool{
	PlanMonthly:    true,
	PlanQuarterly:  true,
	PlanSemiannual: true,
	PlanAnnual:     true,
}

// ParsePlan validates a raw plan string. Unknown values are rejected,
// never coerced to a default plan.
func ParsePlan(s string) (Plan, error) {
	p := Plan(s)
	if !ValidPlans[p] {
		return "", fmt.Errorf("invalid plan: %q", s)
	}
	return p, nil
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	return ValidPlans[p]
}

// DefaultPriceCents returns the catalog price in BRL cents. The price
// actually charged on a subscription may diverge from this.
func (p Plan) DefaultPriceCents() uint64 {
	switch p {
	case PlanMonthly:
		return 15000
	case PlanQuarterly:
		return 40000
	case PlanSemiannual:
		return 75000
	case PlanAnnual:
		return 140000
	default:
		return 0
	}
}

// NextExpiration computes the expiration reached by extending base by one
// billing cycle. Month and year additions clamp the day-of-month to the
// last valid day of the target month (Jan 31 + 1 month = Feb 28/29),
// never rolling into a later month.
func (p Plan) NextExpiration(base time.Time) time.Time {
	switch p {
	case PlanMonthly:
		return biztime.AddMonthsClamped(base, 1)
	case PlanQuarterly:
		return biztime.AddMonthsClamped(base, 3)
	case PlanSemiannual:
		return biztime.AddMonthsClamped(base, 6)
	case PlanAnnual:
		return biztime.AddYearsClamped(base, 1)
	default:
		return base
	}
}
