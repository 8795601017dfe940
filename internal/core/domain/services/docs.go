// Package services provides the domain services of the ordering core: logic that
// reads several aggregates but belongs to none of them.
//
// The package includes:
//   - PricingEngine: prices a dish with its selected options, and sums order totals
//   - AccessPolicy: role capability table deciding visibility and allowed status targets
//
// Both are pure: no I/O, no shared mutable state, safe for concurrent use.
package services
