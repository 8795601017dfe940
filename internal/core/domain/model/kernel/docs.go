// Package kernel provides the value objects shared by every aggregate of the ordering core:
//   - ID: positive store-assigned identity of users, restaurants, dishes and orders
//   - Price: a non-negative amount in minor currency units
//   - UUID: identifier of domain events relayed through the outbox
//   - Optional: an explicitly absent-or-present value
//
// Values are immutable and their zero values are invalid where that matters (UUID).
package kernel
