// Package services defines the business logic for questions, answers, and
// accounts. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrQuestionNotFound indicates that the referenced question id does not
	// exist in the store. Update, delete, and answer creation against a
	// missing id all return this error; the earlier iterations of this
	// service disagreed on that point, so the rule here is deliberate and
	// uniform.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrStoreFailure is the collapsed store-side failure: connectivity,
	// constraint violations, and serialization problems all surface as this
	// one error. The underlying cause is kept in the wrap chain for logging
	// but never shown to clients.
	ErrStoreFailure = errors.New("store query failed")

	// ErrMissingFields is returned when strict validation is enabled and a
	// question is created or updated without a title or content.
	ErrMissingFields = errors.New("title and content are required")

	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrWrongPassword is returned when login credentials do not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrAccountNotFound indicates that no account exists for the given email.
	ErrAccountNotFound = errors.New("account not found")
)

// storeFail wraps a raw store error so callers can branch on ErrStoreFailure
// while the original cause stays available for logs.
func storeFail(err error) error {
	return errors.Join(ErrStoreFailure, err)
}
