package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation is blocked by existing references
// (e.g. deleting a category that ledger entries still point at).
var ErrConflict = errors.New("resource is still referenced")

// ErrUnknownMember indicates that a household member identifier is not part of
// the configured household.
var ErrUnknownMember = errors.New("unknown household member")

// ErrUnrecognizedFormat indicates that an uploaded CSV matches neither of the
// supported bank export dialects.
var ErrUnrecognizedFormat = errors.New("unrecognized CSV format")
