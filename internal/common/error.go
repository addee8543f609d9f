// Package common defines shared sentinel errors and small utilities used
// across DocBot components. Callers should use errors.Is to match these
// values; wrapping with fmt.Errorf("...: %w", err) preserves matching.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential store errors. ErrorStoreUnavailable marks storage faults so
	// callers can tell them apart from validation failures and retry.
	ErrorDuplicateUser    = errors.New("username already exists")
	ErrorStoreUnavailable = errors.New("credential store unavailable")

	// Validation errors.
	ErrorInvalidUsernameFormat = errors.New("invalid username format")
	ErrorPasswordTooShort      = errors.New("password too short")
	ErrorPasswordMismatch      = errors.New("passwords do not match")

	// Session errors. ErrorInvalidCredentials deliberately covers both an
	// unknown username and a wrong password.
	ErrorInvalidCredentials   = errors.New("invalid username or password")
	ErrorNotAuthenticated     = errors.New("not logged in")
	ErrorAlreadyAuthenticated = errors.New("already logged in")
	ErrorRequestInFlight      = errors.New("assistant request already in flight")
	ErrorNothingToRetry       = errors.New("no pending question to retry")

	// Conversation log errors. ErrorNothingToExport is informational, not a
	// fault: the conversation was simply empty.
	ErrorNothingToExport = errors.New("nothing to export")
	ErrorExportNotFound  = errors.New("chat log not found")

	// External AI errors.
	ErrorExternalService = errors.New("assistant service failure")
)
