package market

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

func TestClassifyPgErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *errors.Error
		exit     int
	}{
		{
			name:     "unique violation is a conflict",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			sentinel: errors.ErrConflict,
			exit:     6,
		},
		{
			name:     "check violation is a validation failure",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "listings_category_check"},
			sentinel: errors.ErrValidation,
			exit:     5,
		},
		{
			name:     "fk violation is a validation failure",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "listings_owner_fkey"},
			sentinel: errors.ErrValidation,
			exit:     5,
		},
		{
			name:     "not null violation is a validation failure",
			err:      &pgconn.PgError{Code: "23502", ColumnName: "title"},
			sentinel: errors.ErrValidation,
			exit:     5,
		},
		{
			name:     "invalid password is an auth failure",
			err:      &pgconn.PgError{Code: "28P01"},
			sentinel: errors.ErrAuth,
			exit:     4,
		},
		{
			name:     "no rows is not found",
			err:      pgx.ErrNoRows,
			sentinel: errors.ErrNotFound,
			exit:     7,
		},
		{
			name:     "network error is a connect failure",
			err:      stderrors.New("dial tcp 10.0.0.1:5432: connection refused"),
			sentinel: errors.ErrConnect,
			exit:     3,
		},
		{
			name:     "other server error is internal",
			err:      &pgconn.PgError{Code: "42P01", Message: "relation does not exist"},
			sentinel: errors.ErrInternal,
			exit:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyPgErr(tt.err, "op")
			assert.True(t, errors.Is(got, tt.sentinel), "got %v", got)
			assert.Equal(t, tt.exit, errors.ExitCode(got))
		})
	}
}

func TestClassifyPgErr_Nil(t *testing.T) {
	assert.NoError(t, classifyPgErr(nil, "op"))
}

func TestClassifyPgErr_WrappedPgError(t *testing.T) {
	pe := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	wrapped := fmt.Errorf("exec: %w", pe)

	got := classifyPgErr(wrapped, "create user")
	assert.True(t, errors.Is(got, errors.ErrConflict))
	assert.Contains(t, got.Error(), "users_email_key")
}

func TestMigrateDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://app:pw@localhost:5432/market", "pgx5://app:pw@localhost:5432/market"},
		{"postgresql://app:pw@localhost/market", "pgx5://app:pw@localhost/market"},
		{"pgx5://already", "pgx5://already"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migrateDSN(tt.in))
	}
}
