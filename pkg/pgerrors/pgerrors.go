// Package pgerrors maps PostgreSQL and driver failures onto a small set of
// sentinel errors callers can branch on with errors.Is.
package pgerrors

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

var (
	// ErrConflict: a concurrent transaction won (serialization failure,
	// deadlock, exclusion constraint violation).
	ErrConflict = errors.New("pgerrors: concurrent write conflict")

	// ErrUnavailable: the store could not answer in time or at all.
	// Retryable by the caller.
	ErrUnavailable = errors.New("pgerrors: store unavailable")
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeExclusionViolation   = "23P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
)

// Classify wraps err with ErrConflict or ErrUnavailable when it matches one
// of the known failure classes. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrUnavailable) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeExclusionViolation:
			return fmt.Errorf("%w: %s (%s)", ErrConflict, pqErr.Message, pqErr.Code)
		case codeLockNotAvailable, codeQueryCanceled, codeAdminShutdown, codeCannotConnectNow:
			return fmt.Errorf("%w: %s (%s)", ErrUnavailable, pqErr.Message, pqErr.Code)
		}
		if pqErr.Code.Class() == "08" {
			return fmt.Errorf("%w: %s (%s)", ErrUnavailable, pqErr.Message, pqErr.Code)
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return err
}

// IsConflict reports whether err is (or classifies as) a write conflict.
func IsConflict(err error) bool {
	return errors.Is(Classify(err), ErrConflict)
}

// IsUnavailable reports whether err is (or classifies as) a store outage.
func IsUnavailable(err error) bool {
	return errors.Is(Classify(err), ErrUnavailable)
}
