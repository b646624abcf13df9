// Package assignment provides the Assignment aggregate, the record an
// allocation run produces when it places an order with a delivery agent.
//
// An assignment captures the run date, the agent/order pair, and the
// planner's distance and time estimates. Its status moves from Assigned to
// either Completed or Cancelled as the delivery is tracked.
package assignment
