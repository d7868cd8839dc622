package errors

import (
	stderrors "errors"
	"fmt"
)

// Identity-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeInvalidResetKey    ErrorType = "invalid_reset_key"
	ErrorTypeUsernameTaken      ErrorType = "username_taken"
	ErrorTypeInvalidUsername    ErrorType = "invalid_username"
	ErrorTypeWeakPassword       ErrorType = "weak_password"
	ErrorTypePasswordMismatch   ErrorType = "password_mismatch"
	ErrorTypeLastAdminProtected ErrorType = "last_admin_protected"
	ErrorTypeDeleteNotAllowed   ErrorType = "delete_not_allowed"
)

// IdentityError represents identity-engine errors with security context.
type IdentityError struct {
	*AppError
	// ShouldLog determines if this error should be logged.
	// Expected failures (bad credentials) don't need error-level logging.
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
}

// Error implements the error interface
func (e *IdentityError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *IdentityError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for failed authentication.
// The message is identical for unknown usernames and wrong passwords so the
// response never reveals which factor failed.
func NewInvalidCredentialsError() *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid username or password",
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewAccountInactiveError creates an error for deactivated accounts.
func NewAccountInactiveError() *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeAccountInactive,
			Message: "Account is inactive",
			Details: "Contact a primary administrator to reactivate this account",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewInvalidResetKeyError creates an error for a wrong emergency reset key.
// Returned before any username lookup so a wrong key discloses nothing about
// which accounts exist.
func NewInvalidResetKeyError() *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidResetKey,
			Message: "Invalid master reset key",
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewUsernameTakenError creates a conflict error for duplicate usernames.
func NewUsernameTakenError(username string) *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeUsernameTaken,
			Message: fmt.Sprintf("Username '%s' is already taken", username),
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewInvalidUsernameError creates a validation error for malformed usernames.
func NewInvalidUsernameError() *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidUsername,
			Message: "Username must be 4-30 characters, letters/digits/underscore only",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewWeakPasswordError creates a validation error naming the first failed
// password rule.
func NewWeakPasswordError(rule string) *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeWeakPassword,
			Message: rule,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewPasswordMismatchError creates a validation error for confirmation
// mismatches.
func NewPasswordMismatchError() *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypePasswordMismatch,
			Message: "Passwords do not match",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewLastAdminProtectedError guards the last active primary administrator.
func NewLastAdminProtectedError() *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeLastAdminProtected,
			Message: "Cannot deactivate the last active primary administrator",
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewDeleteNotAllowedError refuses deletion of primary administrator accounts.
func NewDeleteNotAllowedError() *IdentityError {
	return &IdentityError{
		AppError: &AppError{
			Type:    ErrorTypeDeleteNotAllowed,
			Message: "Primary administrator accounts cannot be deleted",
			Details: "Deactivate the account instead",
		},
		ShouldLog:     true,
		SecurityEvent: false,
	}
}

// IsIdentityError checks if the error is an IdentityError (supports wrapped errors via errors.As)
func IsIdentityError(err error) bool {
	var idErr *IdentityError
	return stderrors.As(err, &idErr)
}

// GetIdentityError extracts IdentityError from error chain (supports wrapped errors via errors.As)
func GetIdentityError(err error) *IdentityError {
	var idErr *IdentityError
	if stderrors.As(err, &idErr) {
		return idErr
	}
	return nil
}

// IsErrorType reports whether err carries the given identity error type.
func IsErrorType(err error, t ErrorType) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Type == t
	}
	return false
}

// ShouldLogIdentityError returns true if the error should be logged.
// This keeps expected auth failures out of the error logs.
func ShouldLogIdentityError(err error) bool {
	if idErr := GetIdentityError(err); idErr != nil {
		return idErr.ShouldLog
	}
	return true
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if idErr := GetIdentityError(err); idErr != nil {
		return idErr.SecurityEvent
	}
	return false
}
