package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API and bot responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest         = 4000
	CodeInsufficientFunds      = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeInvalidTransactionKind = 4004
	CodeInvalidReferral        = 4005
	CodeConstraintViolation    = 4006
	CodeUnauthenticated        = 4010
	CodeUnauthorized           = 4030
	CodeUserNotFound           = 4040
	CodeUnknownReferrer        = 4041
	CodeDuplicate              = 4090
	CodeAccrualInProgress      = 4230

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrInsufficientFunds is returned when the available balance cannot cover an operation
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnauthenticated is returned when a request carries no valid API credential
	ErrUnauthenticated = errors.New("missing or invalid API token")

	// ErrUnauthorized is returned when a non-admin caller invokes a privileged operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStoreUnavailable is returned when the ledger store cannot be reached or fails
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrUnknownReferrer is returned when a referral token does not resolve to a user
	ErrUnknownReferrer = errors.New("unknown referrer")

	// ErrInvalidRequest is returned when a request cannot be parsed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when an amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount that must be positive is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionKind is returned for a transaction kind outside the known set
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidReferralLevel is returned when a referral edge level is not 1 or 2
	ErrInvalidReferralLevel = errors.New("referral level must be 1 or 2")

	// ErrSelfReferral is returned when a referral edge would point a user at itself
	ErrSelfReferral = errors.New("user cannot refer itself")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateReferral is returned when a referral edge already exists for the same level
	ErrDuplicateReferral = errors.New("referral edge already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrAccrualInProgress is returned when another daily accrual run holds the run lock
	ErrAccrualInProgress = errors.New("daily accrual already in progress")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidTransactionKind):
		return CodeInvalidTransactionKind
	case errors.Is(err, ErrInvalidReferralLevel), errors.Is(err, ErrSelfReferral):
		return CodeInvalidReferral
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrUnknownReferrer):
		return CodeUnknownReferrer
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrDuplicateReferral):
		return CodeDuplicate
	case errors.Is(err, ErrAccrualInProgress):
		return CodeAccrualInProgress
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected reinvestment
type InsufficientFundsError struct {
	UserID    int64
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: available %s", e.UserID, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID int64, available string) error {
	return &InsufficientFundsError{
		UserID:    userID,
		Available: available,
	}
}

// UnauthorizedError describes a privileged operation attempted by a non-admin caller
type UnauthorizedError struct {
	CallerID  int64
	Operation string
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("caller %d is not allowed to %s", e.CallerID, e.Operation)
}

// Is checks if the target error is an ErrUnauthorized
func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// LogFields returns a map of fields for structured logging
func (e *UnauthorizedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unauthorized",
		"caller_id":  e.CallerID,
		"operation":  e.Operation,
		"error_code": CodeUnauthorized,
	}
}

// NewUnauthorizedError creates a new unauthorized error for the given operation
func NewUnauthorizedError(callerID int64, operation string) error {
	return &UnauthorizedError{
		CallerID:  callerID,
		Operation: operation,
	}
}

// UnknownReferrerError keeps the raw token that failed to resolve
type UnknownReferrerError struct {
	Token  string
	Reason string
}

// Error implements the error interface
func (e *UnknownReferrerError) Error() string {
	return fmt.Sprintf("unknown referrer %q: %s", e.Token, e.Reason)
}

// Is checks if the target error is an ErrUnknownReferrer
func (e *UnknownReferrerError) Is(target error) bool {
	return target == ErrUnknownReferrer
}

// LogFields returns a map of fields for structured logging
func (e *UnknownReferrerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unknown_referrer",
		"token":      e.Token,
		"reason":     e.Reason,
		"error_code": CodeUnknownReferrer,
	}
}

// NewUnknownReferrerError creates a new unknown referrer error
func NewUnknownReferrerError(token, reason string) error {
	return &UnknownReferrerError{
		Token:  token,
		Reason: reason,
	}
}

// StoreError wraps a failure of the persistence layer with the operation that caused it
type StoreError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports StoreError as ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeStoreUnavailable,
	}
}

// NewStoreError wraps err as a store failure of the given operation
func NewStoreError(operation string, err error) error {
	return &StoreError{
		Operation: operation,
		Err:       err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUnauthorizedError checks if the error is an access denial
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsStoreUnavailableError checks if the error originates from the ledger store
func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsDuplicateError checks if the error is any duplicate record error
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateUser) || errors.Is(err, ErrDuplicateReferral)
}
