package baybe

import "github.com/Mehrdad93/baybe/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrConfiguration      = domain.ErrConfiguration
	ErrInvariantViolation = domain.ErrInvariantViolation
	ErrLookupMiss         = domain.ErrLookupMiss
	ErrUnknownImputeMode  = domain.ErrUnknownImputeMode
)
