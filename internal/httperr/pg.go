package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes raised when the appointments exclusion or unique
// constraint rejects an overlapping insert.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}
