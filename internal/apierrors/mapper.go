package apierrors

import (
	"errors"

	importsProcessor "renewal-server/internal/imports/processor"
	interactionsProcessor "renewal-server/internal/interactions/processor"
	policiesProcessor "renewal-server/internal/policies/processor"
	renewalProcessor "renewal-server/internal/renewal/processor"
	"renewal-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// Map policies processor errors
	switch {
	case errors.Is(err, policiesProcessor.ErrPolicyNotFound):
		return NotFound(CodePolicyNotFound, "Policy not found")

	case errors.Is(err, policiesProcessor.ErrCustomerNotFound):
		return NotFound(CodeCustomerNotFound, "Customer not found")

	case errors.Is(err, policiesProcessor.ErrCustomerRequired):
		return BadRequest(CodeValidationError, "Either customer_id or a new customer is required")

	case errors.Is(err, policiesProcessor.ErrPolicyNumberRequired):
		return BadRequest(CodeValidationError, "Policy number is required")

	case errors.Is(err, policiesProcessor.ErrRegistrationRequired):
		return BadRequest(CodeValidationError, "Vehicle registration is required")

	case errors.Is(err, policiesProcessor.ErrMobileRequired):
		return BadRequest(CodeValidationError, "Customer mobile is required")

	case errors.Is(err, policiesProcessor.ErrInvalidBucket):
		return BadRequest(CodeInvalidBucket, "Invalid bucket")

	case errors.Is(err, policiesProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid renewal status")

	case errors.Is(err, policiesProcessor.ErrInvalidStage):
		return BadRequest(CodeInvalidStage, "Invalid renewal stage")

	case errors.Is(err, policiesProcessor.ErrDuplicatePolicyNumber):
		return Conflict(CodeDuplicatePolicy, "A policy with this number already exists")

	case errors.Is(err, policiesProcessor.ErrActivePolicyExists):
		return Conflict(CodeDuplicatePolicy, "An active policy already exists for this vehicle")

	case errors.Is(err, policiesProcessor.ErrRenewalViaUpdate):
		return BadRequest(CodeRenewalViaUpdate, "Use the renew endpoint to mark a policy as Renewed")

	// Map interactions processor errors
	case errors.Is(err, interactionsProcessor.ErrPolicyNotFound):
		return NotFound(CodePolicyNotFound, "Policy not found")

	case errors.Is(err, interactionsProcessor.ErrInvalidType):
		return BadRequest(CodeInvalidType, "Invalid interaction type")

	case errors.Is(err, interactionsProcessor.ErrInvalidOutcome):
		return BadRequest(CodeInvalidOutcome, "Invalid interaction outcome")

	case errors.Is(err, interactionsProcessor.ErrRemarkRequired):
		return BadRequest(CodeRemarkRequired, "A remark is required")

	case errors.Is(err, interactionsProcessor.ErrFollowUpRequired):
		return BadRequest(CodeFollowUpRequired, "A next follow-up date is required for callback outcomes")

	case errors.Is(err, interactionsProcessor.ErrFollowUpInPast):
		return BadRequest(CodeInvalidFollowUp, "The next follow-up date must be in the future")

	// Map renewal processor errors
	case errors.Is(err, renewalProcessor.ErrPolicyNotFound):
		return NotFound(CodePolicyNotFound, "Policy not found")

	case errors.Is(err, renewalProcessor.ErrAlreadyRenewed):
		return Conflict(CodeAlreadyRenewed, "This policy has already been renewed")

	case errors.Is(err, renewalProcessor.ErrPolicyNumberRequired):
		return BadRequest(CodeValidationError, "New policy number is required")

	case errors.Is(err, renewalProcessor.ErrInvalidTermDates):
		return BadRequest(CodeInvalidTermDates, "The new term end date must be after its start date")

	case errors.Is(err, renewalProcessor.ErrInvalidPremium):
		return BadRequest(CodeInvalidPremium, "The premium amount must not be negative")

	case errors.Is(err, renewalProcessor.ErrInvalidPaymentMode):
		return BadRequest(CodeInvalidPaymentMode, "Unsupported payment mode")

	case errors.Is(err, renewalProcessor.ErrDuplicatePolicyNumber):
		return Conflict(CodeDuplicatePolicy, "A policy with the new number already exists")

	// Map imports processor errors
	case errors.Is(err, importsProcessor.ErrNoRows):
		return BadRequest(CodeImportEmpty, "The import contains no rows")

	case errors.Is(err, importsProcessor.ErrTooManyRows):
		return BadRequest(CodeImportTooLarge, "The import exceeds the row limit")

	// Map store errors that escape without a processor translation
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrAlreadyRenewed):
		return Conflict(CodeAlreadyRenewed, "This policy has already been renewed")

	case errors.Is(err, store.ErrDuplicatePolicy):
		return Conflict(CodeDuplicatePolicy, "A policy with this number already exists")

	case errors.Is(err, store.ErrActivePolicyExists):
		return Conflict(CodeDuplicatePolicy, "An active policy already exists for this vehicle")
	}

	// Unknown error: sanitize to a 500
	return InternalError(err)
}
