package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	CheckError        ErrorType = "check"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	EntityTypeUser        EntityType = "user"
	EntityTypeReferral    EntityType = "referral"
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeInvestment  EntityType = "investment"
)

// PostgreSQL SQLSTATE codes the ledger reacts to
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateNotNullViolation     = "23502"
	sqlStateCheckViolation       = "23514"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateQueryCanceled        = "57014"
	sqlStateClassConnection      = "08"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// sqlState extracts the SQLSTATE of a PostgreSQL error, or "" for anything else
func (c *ErrorClassifier) sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}

	switch state := c.sqlState(err); {
	case state == sqlStateUniqueViolation:
		return DuplicateKeyError
	case state == sqlStateCheckViolation:
		return CheckError
	case state == sqlStateForeignKeyViolation, state == sqlStateNotNullViolation:
		return ConstraintError
	case state == sqlStateSerializationFailure, state == sqlStateDeadlockDetected, state == sqlStateLockNotAvailable:
		return LockError
	case state == sqlStateQueryCanceled:
		return TransientError
	case strings.HasPrefix(state, sqlStateClassConnection):
		return ConnectionError
	case state != "":
		return ""
	}

	// Not a server error: fall back to the message
	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if c.sqlState(err) == sqlStateUniqueViolation {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "eof") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch c.sqlState(err) {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "serialization failure")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if strings.HasPrefix(c.sqlState(err), sqlStateClassConnection) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch c.sqlState(err) {
	case sqlStateForeignKeyViolation, sqlStateNotNullViolation, sqlStateCheckViolation:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "violates") ||
		strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "check constraint")
}

// MapError maps a database error raised while working on entityType to a domain error
func (c *ErrorClassifier) MapError(err error, operation string, entityType EntityType) error {
	if err == nil {
		return nil
	}

	switch c.Classify(err) {
	case NotFoundError:
		if entityType == EntityTypeUser {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, operation)

	case DuplicateKeyError:
		switch entityType {
		case EntityTypeUser:
			return errs.ErrDuplicateUser
		case EntityTypeReferral:
			return errs.ErrDuplicateReferral
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, operation)

	case CheckError:
		if entityType == EntityTypeTransaction {
			return fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, operation)
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, operation)

	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, operation)

	default:
		// Lock, connection, timeout and unknown failures abort the operation
		return errs.NewStoreError(operation, err)
	}
}

// withQueryTimeout bounds one store call by the configured query timeout
func withQueryTimeout(ctx context.Context, timeProvider coreport.TimeProvider, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return timeProvider.WithTimeout(ctx, timeout)
}
