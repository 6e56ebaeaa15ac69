// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Login resolution errors. ErrAccountNotFound and
	// ErrInvalidCredentials must render with the same external message so
	// callers cannot distinguish a missing account from a wrong password.
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrOrganizationPending = errors.New("organization pending verification")
	ErrSuspended           = errors.New("organization or account suspended")
	ErrNoPatientsAssigned  = errors.New("no patients assigned")

	// ErrAmbiguousIdentity signals a provisioning invariant violation:
	// one email resolved in more than one account collection.
	ErrAmbiguousIdentity = errors.New("ambiguous identity")

	// ErrTokenIssuance signals that the token signer is unavailable or
	// misconfigured. Fatal for the attempt, never retried.
	ErrTokenIssuance = errors.New("token issuance failed")

	// Signup errors
	ErrPractitionerExists  = errors.New("email or practice number already exists")
	ErrOrganizationExists  = errors.New("organization already exists")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrUnsupportedRole     = errors.New("unsupported role")

	// Account management errors
	ErrOrganizationNotFound     = errors.New("organization not found")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrIncorrectCurrentPassword = errors.New("current password is incorrect")
)
