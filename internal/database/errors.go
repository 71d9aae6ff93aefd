package database

import (
	"errors"
	"strings"

	"smapp/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// IsUniqueViolation reports whether err is a unique-constraint failure on any
// supported dialect.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if code, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

// IsForeignKeyViolation reports whether err is a foreign-key failure.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if code, ok := pgCode(err); ok {
		return code == pgForeignKeyViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

// IsIntegrityViolation reports NOT NULL and CHECK failures.
func IsIntegrityViolation(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgNotNullViolation || code == pgCheckViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not null constraint failed") ||
		strings.Contains(msg, "check constraint failed")
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// TranslateError maps driver and GORM errors onto the application error
// taxonomy. Errors already in the taxonomy and unrecognized errors are
// returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &models.AppError{Code: models.CodeNotFound, Message: "record not found", Err: err}
	case IsUniqueViolation(err):
		return &models.AppError{Code: models.CodeDuplicateName, Message: "duplicate key", Err: err}
	case IsForeignKeyViolation(err):
		return &models.AppError{Code: models.CodeNotFound, Message: "referenced row not found", Err: err}
	case IsIntegrityViolation(err):
		return models.NewConstraintError("constraint violated", err)
	}
	return err
}
