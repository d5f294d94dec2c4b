// Package pgerr translates PostgreSQL driver failures into the core error
// taxonomy so callers can tell retryable store failures from state conflicts.
package pgerr

import (
	"context"
	"errors"

	"farmmarket/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error class prefixes, per the SQLSTATE convention.
const (
	classConnectionException = "08" // connection exception
	classInsufficientRes     = "53" // insufficient resources
	classOperatorInterv      = "57" // operator intervention (shutdowns)

	codeUniqueViolation     = "23505"
	codeSerializationFail   = "40001"
	codeDeadlockDetected    = "40P01"
	codeLockNotAvailable    = "55P03"
	codeQueryCanceledByUser = "57014"
)

// Wrap classifies err for the named operation. Record-not-found and already
// classified taxonomy errors pass through unchanged; connection-level and
// serialization failures become TransientError; unique violations become
// ConflictError. Anything else is surfaced as-is.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	// Already classified or semantically meaningful to the caller.
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, errs.ErrValidation) ||
		errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrInvalidTransition) ||
		errors.Is(err, errs.ErrTransient) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewTransientError(op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.NewConflictErrorWithCause(op, err)
		case codeSerializationFail, codeDeadlockDetected, codeLockNotAvailable, codeQueryCanceledByUser:
			return errs.NewTransientError(op, err)
		}
		switch pgErr.Code[:2] {
		case classConnectionException, classInsufficientRes, classOperatorInterv:
			return errs.NewTransientError(op, err)
		}
		return err
	}

	// Connection-level failures reach gorm without a SQLSTATE.
	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return errs.NewTransientError(op, err)
	}

	return err
}
