// Package errs provides the error taxonomy of the ordering service.
//
// Every error type follows one pattern: a sentinel (ErrObjectNotFound, ErrForbidden, ...),
// a struct carrying the details, constructors with and without a cause, and an Unwrap
// method returning the sentinel so errors.Is works across wrapping.
//
// Workflow handlers never return raw infrastructure errors. Normalize wraps anything
// outside the taxonomy into a StorageFailureError, and KindOf maps any error onto one
// of four kinds:
//   - KindNotFound: restaurant, dish or order absent
//   - KindForbidden: visibility or transition denied
//   - KindValidation: malformed input
//   - KindStorage: the store was unavailable or a write failed
//
// Transport adapters switch on the kind to pick a status code.
package errs
