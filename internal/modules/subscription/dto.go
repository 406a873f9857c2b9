package subscription

import "time"

// CheckRequest is the body of POST /api/auth/check-subscription.
type CheckRequest struct {
	Email string `json:"email"`
}

// Status is the outcome of a subscription lookup.
type Status struct {
	Found      bool
	Subscribed bool
	ExpiresAt  *time.Time
}
