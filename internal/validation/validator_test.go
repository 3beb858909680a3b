package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
	"github.com/cardtraders/cardtraders-infra/internal/validation"
)

type testSpec struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	PfpURL   string `validate:"omitempty,url,startswith=https://"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(testSpec{
		Email:    "test@cardtraders.app",
		Password: "Test1234!",
		PfpURL:   "https://cdn.cardtraders.app/pfp/test-user.png",
	})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name       string
		spec       testSpec
		wantErrMsg string
	}{
		{
			name:       "missing required field",
			spec:       testSpec{Password: "Test1234!"},
			wantErrMsg: "email is required",
		},
		{
			name:       "invalid email",
			spec:       testSpec{Email: "not-an-email", Password: "Test1234!"},
			wantErrMsg: "email must be a valid email address",
		},
		{
			name:       "password too short",
			spec:       testSpec{Email: "test@cardtraders.app", Password: "short"},
			wantErrMsg: "password must be at least 8 characters",
		},
		{
			name:       "plain http profile url",
			spec:       testSpec{Email: "test@cardtraders.app", Password: "Test1234!", PfpURL: "http://cdn.cardtraders.app/x.png"},
			wantErrMsg: "pfpurl must start with https://",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.spec)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrValidation), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}

func TestValidator_LowercaseFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(testSpec{Password: "Test1234!"})
	assert.Error(t, err)

	// Messages name "email", never the Go field "Email".
	assert.Contains(t, err.Error(), "email")
	assert.NotContains(t, err.Error(), "Email")
}
