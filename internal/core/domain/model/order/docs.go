// Package order implements the Order aggregate root of the ordering core.
//
// The package includes:
//   - Order: customer, restaurant, optional deliverer, priced items and lifecycle status
//   - Item / Selection: the immutable lines of an order and the options picked for them
//   - Status: Pending -> Cooking -> Cooked -> PickedUp -> Delivered
//   - Event: domain events recorded by the aggregate and drained into the outbox
//
// Key business rules:
//   - An order is created Pending, with its items and total fixed forever
//   - Only the status and the deliverer change afterwards
//   - A deliverer is assigned at most once
//
// Who may request which status is decided by the access policy in the domain
// services package, not by the aggregate.
package order
