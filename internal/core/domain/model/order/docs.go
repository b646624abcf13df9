// Package order provides domain entities and business logic for customer
// order management in the delivery system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, destination, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, warehouse, customer name,
//     address and destination coordinates
//   - Order status follows a defined workflow: Pending -> Assigned -> Delivered,
//     with Pending <-> Deferred for orders no agent could take
//   - Only Pending orders can be assigned, so an order placed with one agent
//     cannot be handed to another in the same allocation run
//   - An agent reference exists exactly when the order is Assigned or Delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
