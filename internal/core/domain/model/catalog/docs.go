// Package catalog models the restaurant catalog the ordering core reads:
// restaurants, their dishes, and the options and choices that modify a dish's price.
//
// The catalog is owned by another service; this package only reconstructs
// validated values from what the store returns. An option either carries a flat
// extra charge or a list of mutually exclusive choices, each with an optional
// extra of its own.
package catalog
