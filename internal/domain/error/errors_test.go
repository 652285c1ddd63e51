package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrStoreUnavailable.Error() != "ledger store unavailable" {
		t.Errorf("ErrStoreUnavailable has unexpected message: %s", ErrStoreUnavailable.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InsufficientFunds", ErrInsufficientFunds, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidTransactionKind", ErrInvalidTransactionKind, 4004},
		{"SelfReferral", ErrSelfReferral, 4005},
		{"ConstraintViolation", ErrConstraintViolation, 4006},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"Unauthorized", ErrUnauthorized, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"UnknownReferrer", ErrUnknownReferrer, 4041},
		{"DuplicateUser", ErrDuplicateUser, 4090},
		{"DuplicateReferral", ErrDuplicateReferral, 4090},
		{"AccrualInProgress", ErrAccrualInProgress, 4230},
		{"StoreUnavailable", ErrStoreUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"TypedInsufficientFunds", NewInsufficientFundsError(1, "0.00"), 4001},
		{"TypedStoreError", NewStoreError("get user", errors.New("dial tcp: refused")), 5030},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(789, "0.00")

	expectedErrMsg := "insufficient funds for user 789: available 0.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientFundsError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	if !IsInsufficientFundsError(fmt.Errorf("reinvest: %w", err)) {
		t.Errorf("IsInsufficientFundsError(wrapped) = false, want true")
	}

	var typed *InsufficientFundsError
	if !errors.As(err, &typed) {
		t.Fatal("errors.As did not match *InsufficientFundsError")
	}
	fields := typed.LogFields()
	if fields["user_id"] != int64(789) || fields["error_code"] != CodeInsufficientFunds {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError(42, "accrue daily profit")

	expectedErrMsg := "caller 42 is not allowed to accrue daily profit"
	if err.Error() != expectedErrMsg {
		t.Errorf("UnauthorizedError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
	if !IsUnauthorizedError(err) {
		t.Errorf("IsUnauthorizedError(err) = false, want true")
	}
	if IsInsufficientFundsError(err) {
		t.Errorf("IsInsufficientFundsError(err) = true, want false")
	}
}

func TestUnknownReferrerError(t *testing.T) {
	err := NewUnknownReferrerError("abc", "not a number")

	if !errors.Is(err, ErrUnknownReferrer) {
		t.Errorf("errors.Is(err, ErrUnknownReferrer) = false, want true")
	}
	if err.Error() != `unknown referrer "abc": not a number` {
		t.Errorf("UnknownReferrerError.Error() = %s", err.Error())
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := NewStoreError("update user", cause)

	if !IsStoreUnavailableError(err) {
		t.Errorf("IsStoreUnavailableError(err) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "update user: connection reset by peer" {
		t.Errorf("StoreError.Error() = %s", err.Error())
	}
}

func TestHelperFunctions(t *testing.T) {
	if !IsUserNotFoundError(fmt.Errorf("lookup: %w", ErrUserNotFound)) {
		t.Errorf("IsUserNotFoundError(wrapped) = false, want true")
	}
	if !IsDuplicateError(ErrDuplicateUser) || !IsDuplicateError(ErrDuplicateReferral) {
		t.Errorf("IsDuplicateError should match both duplicate sentinels")
	}
	if IsDuplicateError(ErrUserNotFound) {
		t.Errorf("IsDuplicateError(ErrUserNotFound) = true, want false")
	}
}
