package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/assignment"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/services"
)

// ErrAllocationInProgress is returned when a run is requested while another
// run is still executing. The caller may simply retry later; the scheduler
// treats it as a skipped occurrence.
var ErrAllocationInProgress = errors.New("an allocation run is already in progress")

// unknownName is reported when a warehouse or agent name cannot be resolved.
const unknownName = "Unknown"

// AllocateOrdersCommandHandler coordinates one allocation run end to end:
// requeue previously deferred orders, load the eligible pool, plan with the
// domain services, persist the outcome, and price it.
//
// At most one run executes at a time. Everything a run writes rides a single
// transaction, so a failure anywhere rolls the whole run back and the orders
// stay Pending for a retry.
type AllocateOrdersCommandHandler struct {
	uowFactory AllocationUoWFactory
	planner    services.AllocationPlanner
	payouts    services.PayoutCalculator

	runLock sync.Mutex
}

// NewAllocateOrdersCommandHandler creates a handler for allocation runs.
// The handler owns the run lock, so a single instance must be shared between
// the scheduler and the HTTP trigger.
func NewAllocateOrdersCommandHandler(uowFactory AllocationUoWFactory) *AllocateOrdersCommandHandler {
	return &AllocateOrdersCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewAllocationPlanner(),
		payouts:    services.NewPayoutCalculator(),
	}
}

// Handle executes one allocation run and returns its report. A second
// concurrent invocation fails fast with ErrAllocationInProgress.
func (h *AllocateOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AllocateOrdersCommand,
) (*AllocationReport, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !h.runLock.TryLock() {
		return nil, ErrAllocationInProgress
	}
	defer h.runLock.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requeued, err := uow.OrderRepository().RequeueDeferred(ctx)
	if err != nil {
		return nil, err
	}

	agents, err := uow.AgentRepository().GetAllCheckedIn(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	if len(agents) == 0 || len(orders) == 0 {
		report := &AllocationReport{
			Message:       "no orders or agents available for assignment",
			RequeuedCount: requeued,
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return report, nil
	}

	plan, err := h.planner.Plan(agents, orders)
	if err != nil {
		return nil, err
	}

	report, err := h.persistPlan(ctx, uow, cmd, plan, agents, orders)
	if err != nil {
		return nil, err
	}

	report.RequeuedCount = requeued

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return report, nil
}

// persistPlan writes the planner's outcome and assembles the run report.
func (h *AllocateOrdersCommandHandler) persistPlan(
	ctx context.Context,
	uow AllocationUoW,
	cmd AllocateOrdersCommand,
	plan *services.Plan,
	agents []*agent.Agent,
	orders []*order.Order,
) (*AllocationReport, error) {
	ordersByID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		ordersByID[o.ID()] = o
	}

	agentNames, warehouseNames := h.resolveNames(ctx, uow, plan, ordersByID)

	report := &AllocationReport{
		AssignmentsCreated: len(plan.Assignments),
		DeferredCount:      plan.DeferredCount,
		TotalCost:          h.payouts.TotalCost(plan.Loads),
	}

	for _, planned := range plan.Assignments {
		created, err := assignment.NewAssignment(
			kernel.NewUUID(),
			cmd.RunDate(),
			planned.AgentID,
			planned.OrderID,
			planned.DeliveryTimeMinutes,
			planned.DistanceKm,
		)
		if err != nil {
			return nil, err
		}

		if err = uow.AssignmentRepository().Add(ctx, created); err != nil {
			return nil, err
		}

		placed := ordersByID[planned.OrderID]
		summary := AssignmentSummary{
			AssignmentID:        created.ID(),
			OrderID:             planned.OrderID,
			AgentID:             planned.AgentID,
			AgentName:           nameOrUnknown(agentNames, planned.AgentID),
			WarehouseName:       nameOrUnknown(warehouseNames, placed.WarehouseID()),
			CustomerName:        placed.CustomerName(),
			TravelDistanceKm:    planned.DistanceKm,
			DeliveryTimeMinutes: planned.DeliveryTimeMinutes,
		}
		report.Assignments = append(report.Assignments, summary)
	}

	for _, o := range orders {
		if err := uow.OrderRepository().Update(ctx, o); err != nil {
			return nil, err
		}
	}

	for _, a := range agents {
		if a.Status() != agent.Active {
			continue
		}
		if err := uow.AgentRepository().Update(ctx, a); err != nil {
			return nil, err
		}
	}

	report.Message = fmt.Sprintf("assigned %d orders, deferred %d",
		report.AssignmentsCreated, report.DeferredCount)

	return report, nil
}

// resolveNames fetches display names for the report. Lookups are
// best-effort: an error leaves the maps empty and names fall back to
// "Unknown" instead of failing the run.
func (h *AllocateOrdersCommandHandler) resolveNames(
	ctx context.Context,
	uow AllocationUoW,
	plan *services.Plan,
	ordersByID map[kernel.UUID]*order.Order,
) (map[kernel.UUID]string, map[kernel.UUID]string) {
	agentIDs := make([]kernel.UUID, 0, len(plan.Loads))
	for _, load := range plan.Loads {
		agentIDs = append(agentIDs, load.AgentID)
	}

	warehouseIDSet := make(map[kernel.UUID]bool)
	for _, planned := range plan.Assignments {
		if o, ok := ordersByID[planned.OrderID]; ok {
			warehouseIDSet[o.WarehouseID()] = true
		}
	}
	warehouseIDs := make([]kernel.UUID, 0, len(warehouseIDSet))
	for id := range warehouseIDSet {
		warehouseIDs = append(warehouseIDs, id)
	}

	agentNames, err := uow.AgentRepository().GetNamesByIDs(ctx, agentIDs)
	if err != nil {
		agentNames = map[kernel.UUID]string{}
	}

	warehouseNames, err := uow.WarehouseRepository().GetNamesByIDs(ctx, warehouseIDs)
	if err != nil {
		warehouseNames = map[kernel.UUID]string{}
	}

	return agentNames, warehouseNames
}

func nameOrUnknown(names map[kernel.UUID]string, id kernel.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return unknownName
}
