package services

// Payout tiers for a single agent's daily order count.
const (
	// HighVolumeThreshold is the order count from which the lowest
	// per-order rate applies.
	HighVolumeThreshold = 50

	// MidVolumeThreshold is the order count from which the middle
	// per-order rate applies.
	MidVolumeThreshold = 25

	// HighVolumeRate is the per-order payout at or above HighVolumeThreshold.
	HighVolumeRate = 42.0

	// MidVolumeRate is the per-order payout at or above MidVolumeThreshold.
	MidVolumeRate = 35.0

	// MinimumDailyPayout is the guaranteed total for an agent with at least
	// one order below MidVolumeThreshold.
	MinimumDailyPayout = 500.0
)

// PayoutCalculator prices an allocation run from the per-agent order
// counts of its plan. It is pure: the same loads always produce the same
// cost, and an agent with zero orders costs nothing.
type PayoutCalculator struct{}

// NewPayoutCalculator creates a new PayoutCalculator instance.
func NewPayoutCalculator() PayoutCalculator {
	return PayoutCalculator{}
}

// PerOrderRate returns the payout per order for an agent carrying the given
// number of orders. Below MidVolumeThreshold the agent earns the minimum
// daily payout spread across its orders, so the rate is 500/count. A zero
// count has a zero rate.
func (c PayoutCalculator) PerOrderRate(orderCount int) float64 {
	switch {
	case orderCount >= HighVolumeThreshold:
		return HighVolumeRate
	case orderCount >= MidVolumeThreshold:
		return MidVolumeRate
	case orderCount > 0:
		return MinimumDailyPayout / float64(orderCount)
	default:
		return 0
	}
}

// AgentPayout returns the total payout for one agent's daily order count.
func (c PayoutCalculator) AgentPayout(orderCount int) float64 {
	return c.PerOrderRate(orderCount) * float64(orderCount)
}

// TotalCost sums the payouts of every agent load in a plan.
func (c PayoutCalculator) TotalCost(loads []AgentLoad) float64 {
	var total float64
	for _, load := range loads {
		total += c.AgentPayout(load.OrderCount)
	}
	return total
}
