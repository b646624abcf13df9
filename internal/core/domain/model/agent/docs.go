// Package agent contains the delivery Agent aggregate and its availability
// state machine. Agents check in daily; only checked-in agents at
// operational warehouses are matched with orders by the allocation engine.
package agent
