// Package services contains domain services coordinating behavior that
// spans multiple aggregates.
//
// AllocationPlanner distributes one run's pending orders across the
// checked-in agents, greedily nearest-first under per-agent working-day
// limits, and guarantees each order is placed with at most one agent.
// PayoutCalculator prices the resulting plan with the tiered per-order
// payout model.
//
// Both services are stateless and deterministic; the run coordinator in the
// application layer owns transactions and persistence.
package services
