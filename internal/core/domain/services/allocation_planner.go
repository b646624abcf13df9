package services

import (
	"sort"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
)

// Working-day limits for a single agent and the fixed time model used to
// estimate a delivery.
const (
	// TravelMinutesPerKm converts great-circle distance to travel time.
	TravelMinutesPerKm = 5.0

	// HandlingMinutes is the fixed per-order overhead added on top of travel.
	HandlingMinutes = 30.0

	// MaxAgentMinutes caps an agent's total delivery time per run (10 hours).
	MaxAgentMinutes = 600.0

	// MaxAgentDistanceKm caps an agent's total travel distance per run.
	MaxAgentDistanceKm = 100.0
)

// PlannedAssignment is one order placed with one agent, alongside the
// distance and time estimates that justified the placement.
type PlannedAssignment struct {
	AgentID             kernel.UUID
	OrderID             kernel.UUID
	DistanceKm          float64
	DeliveryTimeMinutes float64
}

// AgentLoad summarizes what a single agent accumulated during planning.
// OrderCount feeds the payout calculator.
type AgentLoad struct {
	AgentID         kernel.UUID
	OrderCount      int
	TotalMinutes    float64
	TotalDistanceKm float64
}

// Plan is the outcome of a planning pass over one eligible pool of agents
// and orders.
type Plan struct {
	Assignments   []PlannedAssignment
	Loads         []AgentLoad
	DeferredCount int
}

// AllocationPlanner is a domain service that distributes pending orders
// across checked-in agents for one allocation run.
//
// Key responsibilities:
//   - Matching each agent with the nearest orders of its own warehouse
//   - Enforcing per-agent working-day limits on time and distance
//   - Guaranteeing an order is placed with at most one agent per run
//   - Deferring every order no agent could take
//
// Business rules:
//   - Agents are processed in ascending order of their identifier, and each
//     agent's candidates are sorted by distance (ties broken by order
//     identifier), so a given pool always produces the same plan
//   - Delivery time is distance x 5 min/km plus 30 minutes handling
//   - An agent stops accumulating once an order would push it past 600
//     minutes or 100 km; such orders are skipped, not the whole agent
//   - Once an order is placed it is consumed and never offered to a
//     later agent
//
// Example usage:
//
//	planner := services.NewAllocationPlanner()
//	plan, err := planner.Plan(checkedInAgents, pendingOrders)
//	if err != nil {
//	    // a domain invariant was violated, nothing was planned
//	    return
//	}
//	// plan.Assignments holds the placements, plan.DeferredCount the rest
type AllocationPlanner struct{}

// NewAllocationPlanner creates a new AllocationPlanner instance.
func NewAllocationPlanner() AllocationPlanner {
	return AllocationPlanner{}
}

// Plan distributes the pending orders across the agents and mutates the
// domain objects accordingly: placed orders move to Assigned with their
// agent recorded, leftovers move to Deferred, and agents that received at
// least one order are activated.
//
// Both slices may be empty; the result is then an empty plan with every
// order deferred. Planning fails only when an aggregate is invalid, and a
// failed plan leaves no partial state worth keeping.
func (p AllocationPlanner) Plan(agents []*agent.Agent, orders []*order.Order) (*Plan, error) {
	if err := p.validatePool(agents, orders); err != nil {
		return nil, err
	}

	sortedAgents := make([]*agent.Agent, len(agents))
	copy(sortedAgents, agents)
	sort.Slice(sortedAgents, func(i, j int) bool {
		return sortedAgents[i].ID().String() < sortedAgents[j].ID().String()
	})

	plan := &Plan{}
	consumed := make(map[kernel.UUID]bool, len(orders))

	for _, a := range sortedAgents {
		load, err := p.planAgent(a, orders, consumed, plan)
		if err != nil {
			return nil, err
		}
		plan.Loads = append(plan.Loads, load)
	}

	for _, o := range orders {
		if consumed[o.ID()] {
			continue
		}
		if err := o.Defer(); err != nil {
			return nil, err
		}
		plan.DeferredCount++
	}

	return plan, nil
}

// planAgent walks the agent's candidate orders nearest-first and takes every
// one that fits the remaining time and distance budget.
func (p AllocationPlanner) planAgent(
	a *agent.Agent,
	orders []*order.Order,
	consumed map[kernel.UUID]bool,
	plan *Plan,
) (AgentLoad, error) {
	load := AgentLoad{AgentID: a.ID()}

	for _, c := range p.candidatesFor(a, orders, consumed) {
		travelMinutes := c.distanceKm * TravelMinutesPerKm
		deliveryMinutes := travelMinutes + HandlingMinutes

		if load.TotalMinutes+deliveryMinutes > MaxAgentMinutes {
			continue
		}
		if load.TotalDistanceKm+c.distanceKm > MaxAgentDistanceKm {
			continue
		}

		if err := c.order.Assign(a.ID()); err != nil {
			return AgentLoad{}, err
		}

		consumed[c.order.ID()] = true
		load.OrderCount++
		load.TotalMinutes += deliveryMinutes
		load.TotalDistanceKm += c.distanceKm
		plan.Assignments = append(plan.Assignments, PlannedAssignment{
			AgentID:             a.ID(),
			OrderID:             c.order.ID(),
			DistanceKm:          c.distanceKm,
			DeliveryTimeMinutes: deliveryMinutes,
		})
	}

	if load.OrderCount > 0 {
		if err := a.Activate(); err != nil {
			return AgentLoad{}, err
		}
	}

	return load, nil
}

type candidate struct {
	order      *order.Order
	distanceKm float64
}

// candidatesFor returns the unconsumed pending orders of the agent's
// warehouse, nearest first. Distance ties are broken by order identifier so
// the walk order is stable.
func (p AllocationPlanner) candidatesFor(
	a *agent.Agent,
	orders []*order.Order,
	consumed map[kernel.UUID]bool,
) []candidate {
	var candidates []candidate

	for _, o := range orders {
		if consumed[o.ID()] {
			continue
		}
		if !o.WarehouseID().IsEqual(a.WarehouseID()) {
			continue
		}
		if o.Status() != order.Pending {
			continue
		}

		candidates = append(candidates, candidate{
			order:      o,
			distanceKm: a.Location().DistanceTo(o.Destination()),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distanceKm != candidates[j].distanceKm {
			return candidates[i].distanceKm < candidates[j].distanceKm
		}
		return candidates[i].order.ID().String() < candidates[j].order.ID().String()
	})

	return candidates
}

func (p AllocationPlanner) validatePool(agents []*agent.Agent, orders []*order.Order) error {
	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	return nil
}
