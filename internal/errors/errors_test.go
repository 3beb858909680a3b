package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode_DistinctPerCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"config", Config("missing MONGODB_URI"), 2},
		{"connect", Connect("no route to host"), 3},
		{"auth", Auth("bad credentials"), 4},
		{"validation", Validation("bad flag"), 5},
		{"conflict", Conflict("duplicate email"), 6},
		{"not found", NotFound("no such user"), 7},
		{"internal", Internal("boom"), 1},
		{"plain error", stderrors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitCode_WrappedError(t *testing.T) {
	inner := Connect("dial tcp: connection refused")
	wrapped := fmt.Errorf("seeding user: %w", inner)

	assert.Equal(t, 3, ExitCode(wrapped))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := Validationf("invalid category %q", "baseball")

	assert.True(t, Is(err, ErrValidation))
	assert.False(t, Is(err, ErrConflict))
}

func TestIs_MatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", Auth("authentication failed"))

	assert.True(t, Is(err, ErrAuth))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("dial tcp 10.0.0.1:27017: i/o timeout")
	err := Wrap(cause, CodeConnect, "cannot reach document store")

	require.ErrorIs(t, err, ErrConnect)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "cannot reach document store")
	assert.Contains(t, err.Error(), "i/o timeout")
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("underlying")
	err := ErrConflict.WithCause(cause)

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
}
