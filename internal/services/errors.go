package services

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = errors.New("record not found")

	// ErrIntegrity is returned when the database rejects a write on a constraint
	ErrIntegrity = errors.New("integrity constraint violated")
)

// NotFoundError is returned when the requested entity does not exist
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReferenceError names every foreign key of a write that did not resolve
type ReferenceError struct {
	Missing []string
}

func (e *ReferenceError) Error() string {
	return strings.Join(e.Missing, "; ")
}

// notFoundOr converts gorm's record-not-found into a NotFoundError for entity
func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return err
}

// isIntegrityViolation reports constraint failures raised at write or commit time
func isIntegrityViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "23")
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
