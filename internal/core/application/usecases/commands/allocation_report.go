package commands

import (
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
)

// AssignmentSummary describes one placement of an allocation run for
// reporting. Names are resolved best-effort; a missing warehouse or agent
// row yields "Unknown" rather than failing the run.
type AssignmentSummary struct {
	AssignmentID        kernel.UUID
	OrderID             kernel.UUID
	AgentID             kernel.UUID
	AgentName           string
	WarehouseName       string
	CustomerName        string
	TravelDistanceKm    float64
	DeliveryTimeMinutes float64
}

// AllocationReport is the outcome of one allocation run.
type AllocationReport struct {
	Message            string
	AssignmentsCreated int
	DeferredCount      int
	RequeuedCount      int
	TotalCost          float64
	Assignments        []AssignmentSummary
}
