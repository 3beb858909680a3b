package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/cardtraders/cardtraders-infra/internal/auth"
	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

func TestBuildUserDocument_PasswordIsHashed(t *testing.T) {
	now := time.Now()
	spec := DefaultUserSpec(now)

	user, skipped, err := BuildUserDocument(spec, now)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	// Never the plaintext, but verifiable against it.
	assert.NotEqual(t, spec.Password, user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))

	ok, err := auth.VerifyPassword(user.Password, spec.Password)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuildUserDocument_EmailLowercased(t *testing.T) {
	now := time.Now()
	spec := DefaultUserSpec(now)
	spec.Email = "Test@CardTraders.App"

	user, _, err := BuildUserDocument(spec, now)
	require.NoError(t, err)

	assert.Equal(t, "test@cardtraders.app", user.Email)
}

func TestBuildUserDocument_GeneratesUserID(t *testing.T) {
	now := time.Now()

	user, _, err := BuildUserDocument(DefaultUserSpec(now), now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.UserID, "usr-"))
}

func TestBuildUserDocument_ForcedUserID(t *testing.T) {
	now := time.Now()
	spec := DefaultUserSpec(now)
	spec.UserID = "usr-fixed"

	user, _, err := BuildUserDocument(spec, now)
	require.NoError(t, err)
	assert.Equal(t, "usr-fixed", user.UserID)
}

func TestBuildUserDocument_StarredParsing(t *testing.T) {
	now := time.Now()
	valid := bson.NewObjectID()

	spec := DefaultUserSpec(now)
	spec.Starred = []string{valid.Hex(), "definitely-not-an-objectid", bson.NewObjectID().Hex()}

	user, skipped, err := BuildUserDocument(spec, now)
	require.NoError(t, err)

	assert.Len(t, user.StarredItem, 2)
	assert.Equal(t, valid, user.StarredItem[0])
	assert.Equal(t, []string{"definitely-not-an-objectid"}, skipped)
}

func TestBuildUserDocument_PremadeOrderPreserved(t *testing.T) {
	now := time.Now()
	spec := DefaultUserSpec(now)
	spec.Premade = []string{"first", "second", "third"}

	user, _, err := BuildUserDocument(spec, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, user.PremadeMessages)
}

func TestBuildUserDocument_EmptySlicesNotNil(t *testing.T) {
	now := time.Now()
	spec := DefaultUserSpec(now)
	spec.Premade = nil
	spec.Blocked = nil

	user, _, err := BuildUserDocument(spec, now)
	require.NoError(t, err)

	// Stored as empty arrays, not nulls, so the app's list handling is safe.
	assert.NotNil(t, user.PremadeMessages)
	assert.NotNil(t, user.BlockedUsers)
	assert.NotNil(t, user.Messages)
	assert.NotNil(t, user.StarredItem)
}

func TestBuildUserDocument_PfpSubdocument(t *testing.T) {
	now := time.Now()
	spec := DefaultUserSpec(now)
	spec.PfpURL = "https://cdn.cardtraders.app/pfp/test.png"

	user, _, err := BuildUserDocument(spec, now)
	require.NoError(t, err)

	require.NotNil(t, user.Pfp.URL)
	assert.Equal(t, "https://cdn.cardtraders.app/pfp/test.png", *user.Pfp.URL)
	require.NotNil(t, user.Pfp.Storage)
	assert.Equal(t, "url", *user.Pfp.Storage)
}

func TestBuildUserDocument_InvalidSpecRejected(t *testing.T) {
	now := time.Now()
	spec := DefaultUserSpec(now)
	spec.Email = "nope"

	_, _, err := BuildUserDocument(spec, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestBuildUserDocument_Timestamps(t *testing.T) {
	now := time.Date(2025, 8, 30, 9, 30, 0, 0, time.FixedZone("KST", 9*3600))

	user, _, err := BuildUserDocument(DefaultUserSpec(now), now)
	require.NoError(t, err)

	assert.Equal(t, now.UTC(), user.CreatedAt)
	assert.Equal(t, now.UTC(), user.UpdatedAt)
}
