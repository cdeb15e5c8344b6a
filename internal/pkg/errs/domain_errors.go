package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Rental unit errors
	ErrUnitNotFound    = errors.New("rental unit not found")
	ErrUnitUnavailable = errors.New("rental unit unavailable")
	ErrUnitOccupied    = errors.New("rental unit already occupied")

	// Contract errors
	ErrContractNotFound  = errors.New("contract not found")
	ErrContractConflict  = errors.New("contract availability conflict")
	ErrInvalidTransition = errors.New("contract status transition not permitted")

	// Booking errors
	ErrBookingNotFound         = errors.New("pending booking not found")
	ErrBookingAlreadyProcessed = errors.New("pending booking already processed")

	// Vendor errors
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAlreadyConfirmed   = errors.New("vendor already confirmed")
	ErrConfirmationToken  = errors.New("unknown confirmation token")
	ErrVendorNotConfirmed = errors.New("vendor not confirmed")

	// Authorization errors
	ErrForbidden = errors.New("actor is not allowed to perform this operation")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
