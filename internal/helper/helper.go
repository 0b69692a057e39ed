package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IsDuplicateApplication reports whether err is the unique-violation raised
// by the (job_id, applicant_id) compound index. This is the storage-level
// backstop against two concurrent applies for the same pair.
func IsDuplicateApplication(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation &&
			pgErr.ConstraintName == "idx_applications_job_applicant"
	}
	return false
}

// IsDuplicateEmail reports whether err is the unique-violation on users.email.
func IsDuplicateEmail(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation &&
			pgErr.ConstraintName == "idx_users_email"
	}
	return false
}
