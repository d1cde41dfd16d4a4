package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName.
func IsDuplicateKeyError(err error, constraintName string) bool {
	return hasPgCode(err, pgUniqueViolation, constraintName)
}

// IsForeignKeyError checks if the error is a PostgreSQL foreign key
// violation on a constraint whose name contains constraintName.
func IsForeignKeyError(err error, constraintName string) bool {
	return hasPgCode(err, pgForeignKeyViolation, constraintName)
}

func hasPgCode(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}
