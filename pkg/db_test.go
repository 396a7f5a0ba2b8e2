package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolationError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "exercise_definition_pkey"}
	assert.True(t, IsUniqueViolationError(uniqueErr))
	assert.True(t, IsUniqueViolationError(fmt.Errorf("add definition: %w", uniqueErr)))
	assert.False(t, IsUniqueViolationError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolationError(errors.New("23505")))
	assert.False(t, IsUniqueViolationError(nil))

	assert.True(t, IsForeignKeyViolationError(fmt.Errorf("add set: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, IsForeignKeyViolationError(uniqueErr))
}
