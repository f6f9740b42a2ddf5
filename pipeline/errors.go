package pipeline

import (
	"context"
	"errors"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

// Classify maps an error to the failure kind recorded on a receipt.
func Classify(err error) models.FailureKind {
	switch {
	case err == nil:
		return models.FailureNone
	case errors.Is(err, context.Canceled):
		return models.FailureCancelled
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrSchema):
		return models.FailureValidation
	case errors.Is(err, common.ErrPolicy):
		return models.FailurePolicy
	case errors.Is(err, common.ErrUserRejected):
		return models.FailureUserRejected
	case errors.Is(err, common.ErrSigningUnavailable):
		return models.FailureSigningUnavailable
	case errors.Is(err, common.ErrSubmissionRejected):
		return models.FailureSubmissionRejected
	case errors.Is(err, common.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return models.FailureNetwork
	default:
		return models.FailureInternal
	}
}
