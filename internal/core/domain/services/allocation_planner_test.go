package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCheckInTime() time.Time {
	return time.Date(2025, 6, 15, 6, 30, 0, 0, time.UTC)
}

func newTestAgent(t *testing.T, warehouseID kernel.UUID, location kernel.GeoPoint) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar", "+911234567890", warehouseID, location)
	require.NoError(t, err)
	require.NoError(t, a.CheckIn(testCheckInTime()))
	return a
}

func newTestOrder(t *testing.T, warehouseID kernel.UUID, destination kernel.GeoPoint) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), warehouseID, "Asha Patel", "14 MG Road", destination)
	require.NoError(t, err)
	return o
}

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func TestAllocationPlanner_Plan(t *testing.T) {
	planner := services.NewAllocationPlanner()

	t.Run("should assign nearby orders and defer one beyond the distance cap", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		origin := mustGeoPoint(t, 0, 0)
		a := newTestAgent(t, warehouseID, origin)

		near := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.05, 0))
		mid := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.1, 0))
		far := newTestOrder(t, warehouseID, mustGeoPoint(t, 1.35, 0))

		plan, err := planner.Plan([]*agent.Agent{a}, []*order.Order{far, near, mid})

		require.NoError(t, err)
		assert.Len(t, plan.Assignments, 2)
		assert.Equal(t, 1, plan.DeferredCount)
		assert.Equal(t, order.Assigned, near.Status())
		assert.Equal(t, order.Assigned, mid.Status())
		assert.Equal(t, order.Deferred, far.Status())
		assert.Equal(t, agent.Active, a.Status())

		require.Len(t, plan.Loads, 1)
		assert.Equal(t, 2, plan.Loads[0].OrderCount)
		assert.Less(t, plan.Loads[0].TotalDistanceKm, services.MaxAgentDistanceKm)
	})

	t.Run("should visit nearest order first", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		a := newTestAgent(t, warehouseID, mustGeoPoint(t, 0, 0))

		near := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.05, 0))
		mid := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.1, 0))

		plan, err := planner.Plan([]*agent.Agent{a}, []*order.Order{mid, near})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 2)
		assert.True(t, plan.Assignments[0].OrderID.IsEqual(near.ID()))
		assert.True(t, plan.Assignments[1].OrderID.IsEqual(mid.ID()))
		assert.Less(t, plan.Assignments[0].DistanceKm, plan.Assignments[1].DistanceKm)
	})

	t.Run("should place an order with at most one of two agents", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		origin := mustGeoPoint(t, 0, 0)
		first := newTestAgent(t, warehouseID, origin)
		second := newTestAgent(t, warehouseID, origin)

		only := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.05, 0))

		plan, err := planner.Plan([]*agent.Agent{first, second}, []*order.Order{only})

		require.NoError(t, err)
		assert.Len(t, plan.Assignments, 1)
		assert.Equal(t, 0, plan.DeferredCount)
		assert.Equal(t, order.Assigned, only.Status())

		require.Len(t, plan.Loads, 2)
		assert.Equal(t, 1, plan.Loads[0].OrderCount+plan.Loads[1].OrderCount)
	})

	t.Run("should defer every order when no agents are available", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		first := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.05, 0))
		second := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.1, 0))

		plan, err := planner.Plan(nil, []*order.Order{first, second})

		require.NoError(t, err)
		assert.Empty(t, plan.Assignments)
		assert.Equal(t, 2, plan.DeferredCount)
		assert.Equal(t, order.Deferred, first.Status())
		assert.Equal(t, order.Deferred, second.Status())
	})

	t.Run("should not give an agent orders of another warehouse", func(t *testing.T) {
		ownWarehouseID := kernel.NewUUID()
		otherWarehouseID := kernel.NewUUID()
		a := newTestAgent(t, ownWarehouseID, mustGeoPoint(t, 0, 0))

		foreign := newTestOrder(t, otherWarehouseID, mustGeoPoint(t, 0.05, 0))

		plan, err := planner.Plan([]*agent.Agent{a}, []*order.Order{foreign})

		require.NoError(t, err)
		assert.Empty(t, plan.Assignments)
		assert.Equal(t, 1, plan.DeferredCount)
		assert.Equal(t, order.Deferred, foreign.Status())
		assert.Equal(t, agent.CheckedIn, a.Status())
	})

	t.Run("should stop taking orders at the time cap", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		a := newTestAgent(t, warehouseID, mustGeoPoint(t, 0, 0))

		// Each order sits ~11.12 km out, costing ~85.6 minutes. Seven fit
		// under 600 minutes, the eighth does not.
		orders := make([]*order.Order, 8)
		for i := range orders {
			orders[i] = newTestOrder(t, warehouseID, mustGeoPoint(t, 0.1, float64(i)*0.0001))
		}

		plan, err := planner.Plan([]*agent.Agent{a}, orders)

		require.NoError(t, err)
		assert.Len(t, plan.Assignments, 7)
		assert.Equal(t, 1, plan.DeferredCount)

		require.Len(t, plan.Loads, 1)
		assert.LessOrEqual(t, plan.Loads[0].TotalMinutes, services.MaxAgentMinutes)
	})

	t.Run("should estimate delivery time as travel plus handling", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		a := newTestAgent(t, warehouseID, mustGeoPoint(t, 0, 0))
		o := newTestOrder(t, warehouseID, mustGeoPoint(t, 0.1, 0))

		plan, err := planner.Plan([]*agent.Agent{a}, []*order.Order{o})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 1)
		got := plan.Assignments[0]
		assert.InDelta(t, got.DistanceKm*services.TravelMinutesPerKm+services.HandlingMinutes,
			got.DeliveryTimeMinutes, 1e-9)
	})

	t.Run("should produce an empty plan for an empty pool", func(t *testing.T) {
		plan, err := planner.Plan(nil, nil)

		require.NoError(t, err)
		assert.Empty(t, plan.Assignments)
		assert.Empty(t, plan.Loads)
		assert.Equal(t, 0, plan.DeferredCount)
	})

	t.Run("should fail on invalid agent", func(t *testing.T) {
		var bad agent.Agent

		_, err := planner.Plan([]*agent.Agent{&bad}, nil)

		require.Error(t, err)
	})

	t.Run("should fail on invalid order", func(t *testing.T) {
		var bad order.Order

		_, err := planner.Plan(nil, []*order.Order{&bad})

		require.Error(t, err)
	})
}

func TestAllocationPlanner_Determinism(t *testing.T) {
	planner := services.NewAllocationPlanner()

	agentIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	orderIDs := make([]kernel.UUID, 10)
	for i := range orderIDs {
		orderIDs[i] = kernel.NewUUID()
	}
	warehouseID := kernel.NewUUID()

	buildPool := func(t *testing.T) ([]*agent.Agent, []*order.Order) {
		t.Helper()
		origin := mustGeoPoint(t, 0, 0)
		agents := make([]*agent.Agent, len(agentIDs))
		for i, id := range agentIDs {
			a, err := agent.NewAgent(id, fmt.Sprintf("Agent %d", i), "+911234567890", warehouseID, origin)
			require.NoError(t, err)
			require.NoError(t, a.CheckIn(testCheckInTime()))
			agents[i] = a
		}
		orders := make([]*order.Order, len(orderIDs))
		for i, id := range orderIDs {
			o, err := order.NewOrder(id, warehouseID, "Asha Patel", "14 MG Road",
				mustGeoPoint(t, 0.01*float64(i+1), 0))
			require.NoError(t, err)
			orders[i] = o
		}
		return agents, orders
	}

	t.Run("should produce identical plans for identical pools", func(t *testing.T) {
		firstAgents, firstOrders := buildPool(t)
		secondAgents, secondOrders := buildPool(t)

		firstPlan, err := planner.Plan(firstAgents, firstOrders)
		require.NoError(t, err)
		secondPlan, err := planner.Plan(secondAgents, secondOrders)
		require.NoError(t, err)

		require.Len(t, secondPlan.Assignments, len(firstPlan.Assignments))
		for i := range firstPlan.Assignments {
			assert.True(t, firstPlan.Assignments[i].AgentID.IsEqual(secondPlan.Assignments[i].AgentID))
			assert.True(t, firstPlan.Assignments[i].OrderID.IsEqual(secondPlan.Assignments[i].OrderID))
		}
		assert.Equal(t, firstPlan.DeferredCount, secondPlan.DeferredCount)
	})

	t.Run("should not depend on input ordering", func(t *testing.T) {
		firstAgents, firstOrders := buildPool(t)
		secondAgents, secondOrders := buildPool(t)

		// reverse both slices for the second run
		for i, j := 0, len(secondAgents)-1; i < j; i, j = i+1, j-1 {
			secondAgents[i], secondAgents[j] = secondAgents[j], secondAgents[i]
		}
		for i, j := 0, len(secondOrders)-1; i < j; i, j = i+1, j-1 {
			secondOrders[i], secondOrders[j] = secondOrders[j], secondOrders[i]
		}

		firstPlan, err := planner.Plan(firstAgents, firstOrders)
		require.NoError(t, err)
		secondPlan, err := planner.Plan(secondAgents, secondOrders)
		require.NoError(t, err)

		require.Len(t, secondPlan.Assignments, len(firstPlan.Assignments))
		for i := range firstPlan.Assignments {
			assert.True(t, firstPlan.Assignments[i].AgentID.IsEqual(secondPlan.Assignments[i].AgentID))
			assert.True(t, firstPlan.Assignments[i].OrderID.IsEqual(secondPlan.Assignments[i].OrderID))
		}
	})
}
