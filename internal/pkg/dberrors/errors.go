// Package dberrors classifies low-level PostgreSQL errors so repositories
// can translate them into domain errors.
package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicateConstraintError reports whether err is a unique violation
// (SQLSTATE 23505) on the named constraint, e.g. the users_username_key
// index hit when seeding an admin that already exists.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
