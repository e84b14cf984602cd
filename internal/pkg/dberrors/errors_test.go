package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, IsDuplicateConstraintError(uniqueErr, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(uniqueErr, "users_admission_number_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), "users_email_key"))
}
