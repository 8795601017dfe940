package errs

import "errors"

// Kind is the coarse classification every workflow failure is normalized into.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindForbidden
	KindValidation
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNotFound:
		return "NotFound"
	case KindForbidden:
		return "Forbidden"
	case KindValidation:
		return "ValidationFailure"
	case KindStorage:
		return "StorageFailure"
	}
	return "Unknown"
}

// KindOf classifies err. Errors outside the taxonomy count as storage failures:
// the only unclassified errors a handler sees come from infrastructure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindStorage
	}
}

// Normalize leaves classified errors untouched and wraps anything else in a
// StorageFailureError tagged with operation.
func Normalize(operation string, err error) error {
	if err == nil {
		return nil
	}

	var storageErr *StorageFailureError
	if errors.As(err, &storageErr) {
		return err
	}

	if KindOf(err) != KindStorage {
		return err
	}

	return NewStorageFailureError(operation, err)
}
