package common

import (
	"errors"
)

// Error classes. Every concrete error below wraps exactly one of these so
// callers can branch with errors.Is on either the class or the concrete kind.
var (
	ErrValidation = errors.New("validation error")
	ErrPolicy     = errors.New("policy error")
	ErrSigning    = errors.New("signing error")
	ErrSubmission = errors.New("submission error")
	ErrStore      = errors.New("store error")
	ErrSchema     = errors.New("schema error")
)

var (
	ErrInvalidIntent    = classed(ErrValidation, "invalid donation intent")
	ErrInvalidAddress   = classed(ErrValidation, "invalid ledger address")
	ErrUnknownCampaign  = classed(ErrValidation, "unknown campaign")
	ErrInvalidContentID = classed(ErrValidation, "invalid content id")

	ErrInvalidExpiry      = classed(ErrPolicy, "invalid expiry")
	ErrExpiredPolicy      = classed(ErrPolicy, "expired policy")
	ErrMalformedPolicy    = classed(ErrPolicy, "malformed policy")
	ErrInvalidAssetName   = classed(ErrPolicy, "invalid asset name")
	ErrAssetNameCollision = classed(ErrPolicy, "asset name collision")

	ErrUserRejected       = classed(ErrSigning, "user rejected")
	ErrSigningUnavailable = classed(ErrSigning, "signing unavailable")

	ErrSubmissionRejected   = classed(ErrSubmission, "submission rejected")
	ErrNetwork              = classed(ErrSubmission, "network error")
	ErrDuplicateTransaction = classed(ErrSubmission, "duplicate transaction")

	ErrStoreUnavailable = classed(ErrStore, "store unavailable")
	ErrNotFound         = classed(ErrStore, "not found")
)

type classError struct {
	class error
	msg   string
}

func classed(class error, msg string) error {
	return &classError{class: class, msg: msg}
}

func (e *classError) Error() string {
	return e.msg
}

func (e *classError) Unwrap() error {
	return e.class
}

// IsTransient reports whether a retry of the same call may succeed.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, ErrSigningUnavailable)
}
