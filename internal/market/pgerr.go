package market

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

// SQLSTATE codes the store layer cares about.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
	invalidPasswordCode     = "28P01"
	invalidAuthSpecCode     = "28000"
)

// asPgError unwraps a *pgconn.PgError if there is one in the chain.
func asPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// classifyPgErr maps engine errors onto the tool error taxonomy: constraint
// violations become conflict/validation errors naming the constraint,
// credential problems become auth errors, everything else that reached the
// server is internal, and anything that never reached it is a connectivity
// failure.
func classifyPgErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrap(err, errors.CodeNotFound, msg)
	}

	pe, ok := asPgError(err)
	if !ok {
		// No server response: DNS failure, refused connection, timeout.
		return errors.Wrap(err, errors.CodeConnect, msg)
	}

	switch pe.Code {
	case uniqueViolationCode:
		return errors.Wrapf(err, errors.CodeConflict, "%s: duplicate value for %s", msg, pe.ConstraintName)
	case foreignKeyViolationCode:
		return errors.Wrapf(err, errors.CodeValidation, "%s: referenced row does not exist (%s)", msg, pe.ConstraintName)
	case checkViolationCode:
		return errors.Wrapf(err, errors.CodeValidation, "%s: value rejected by %s", msg, pe.ConstraintName)
	case notNullViolationCode:
		return errors.Wrapf(err, errors.CodeValidation, "%s: %s must not be null", msg, pe.ColumnName)
	case invalidPasswordCode, invalidAuthSpecCode:
		return errors.Wrap(err, errors.CodeAuth, msg+": authentication failed")
	default:
		return errors.Wrap(err, errors.CodeInternal, msg)
	}
}
