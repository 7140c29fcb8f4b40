package webhook

import "errors"

// Admission errors. All of them translate to a 400 at the handler
// boundary; MisconfiguredSecret is the only one that is an operator
// problem rather than a sender problem.
var (
	ErrMissingTenant           = errors.New("application_id header is missing")
	ErrMissingSignatureHeaders = errors.New("svix signature headers are missing")
	ErrMisconfiguredSecret     = errors.New("webhook secret is not configured")
	ErrInvalidSignature        = errors.New("webhook signature verification failed")
)

// Decode errors.
var (
	ErrEmptyPayload   = errors.New("webhook payload is empty")
	ErrMissingData    = errors.New("event data is missing")
	ErrMissingClerkID = errors.New("clerk id is missing from event data")
)
