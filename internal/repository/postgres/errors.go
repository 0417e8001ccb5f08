package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsPgDuplicateError reports whether err is a unique-constraint violation,
// raised by duplicate ordinals and racing revision numbers.
func IsPgDuplicateError(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}

// IsPgNoRowsError reports whether a QueryRow scan found no row.
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgForeignKeyError reports whether err is a foreign-key violation,
// meaning the referenced project or item is gone.
func IsPgForeignKeyError(err error) bool {
	return pgErrorCode(err) == codeForeignKeyViolation
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
