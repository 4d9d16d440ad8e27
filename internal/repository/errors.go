package repository

import (
	"context"
	"errors"
	"net"
	"strings"

	domainRepo "neuroclinic/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// classify wraps a driver error into a StoreError, keeping the backend
// message as-is.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var storeErr *domainRepo.StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		class := domainRepo.ClassUnknown
		switch {
		// 23xxx = integrity_constraint_violation
		case strings.HasPrefix(pgErr.Code, "23"):
			class = domainRepo.ClassConstraint
		// 42501 = insufficient_privilege, raised by row-level security too
		case pgErr.Code == "42501":
			class = domainRepo.ClassPermission
		// 08xxx = connection_exception
		case strings.HasPrefix(pgErr.Code, "08"):
			class = domainRepo.ClassTransport
		}
		return &domainRepo.StoreError{Class: class, Message: pgErr.Message, Err: err}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domainRepo.StoreError{Class: domainRepo.ClassNotFound, Message: err.Error(), Err: err}
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domainRepo.StoreError{Class: domainRepo.ClassTransport, Message: err.Error(), Err: err}
	}

	return &domainRepo.StoreError{Class: domainRepo.ClassUnknown, Message: err.Error(), Err: err}
}
