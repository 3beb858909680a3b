// Package seed builds and writes the test fixtures used to provision the
// cardtraders document store: the well-known test user and sample uploaded
// cards. The one-shot commands under cmd/ are thin wrappers around it.
package seed

import (
	"time"

	"github.com/cardtraders/cardtraders-infra/internal/validation"
)

// DefaultEmail is the address the test user is keyed on when no override
// is given. Everything downstream (app smoke tests, support tooling) knows
// this account.
const DefaultEmail = "test@cardtraders.app"

// Remaining defaults for the seeded test user.
const (
	DefaultPassword = "Test1234!"
	DefaultUsername = "test-user"
	DefaultPhoneNum = "010-0000-0000"
	DefaultAddress  = "서울특별시 어딘가 123"
)

// signupDateLayout is the YYYY/MM/DD format the mobile app writes.
const signupDateLayout = "2006/01/02"

// DefaultPremade returns the premade message snippets the app ships with.
func DefaultPremade() []string {
	return []string{"안녕하세요", "구매 가능합니다"}
}

// UserSpec describes the user document to seed. Zero-value fields are not
// defaulted here; build the spec with DefaultUserSpec and override.
type UserSpec struct {
	Email        string `validate:"required,email"`
	Password     string `validate:"required,min=8"`
	Username     string `validate:"required"`
	PhoneNum     string
	Address      string
	// PfpURL must be https; the pfp field stores a CDN reference, and a
	// plain-http URL would be blocked by the mobile clients anyway.
	PfpURL       string `validate:"omitempty,url,startswith=https://"`
	Notification bool
	// Starred holds uploadedCards ObjectID hex strings, in starred order.
	Starred []string
	// Blocked holds userId strings to seed into blocked_users.
	Blocked []string
	// Premade holds reusable message snippets, stored in the order given.
	Premade    []string
	SignupDate string `validate:"required,datetime=2006/01/02"`
	// UserID forces a userId instead of generating one.
	UserID string
}

// DefaultUserSpec returns the spec for the standard test user as of now.
func DefaultUserSpec(now time.Time) UserSpec {
	return UserSpec{
		Email:        DefaultEmail,
		Password:     DefaultPassword,
		Username:     DefaultUsername,
		PhoneNum:     DefaultPhoneNum,
		Address:      DefaultAddress,
		Notification: true,
		Premade:      DefaultPremade(),
		SignupDate:   now.Format(signupDateLayout),
	}
}

var specValidator = validation.New()

// Validate checks the spec and returns a domain validation error naming
// each offending field.
func (s *UserSpec) Validate() error {
	return specValidator.Validate(s)
}
