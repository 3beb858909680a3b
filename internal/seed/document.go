package seed

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/cardtraders/cardtraders-infra/internal/auth"
	"github.com/cardtraders/cardtraders-infra/internal/domain"
	"github.com/cardtraders/cardtraders-infra/internal/errors"
	"github.com/cardtraders/cardtraders-infra/internal/id"
)

// BuildUserDocument assembles the user document from a validated spec.
// The password is bcrypt-hashed, the email lowercased so the upsert key is
// canonical, and starred ids that are not valid ObjectID hex are skipped
// and returned so the caller can warn about them.
func BuildUserDocument(spec UserSpec, now time.Time) (domain.User, []string, error) {
	if err := spec.Validate(); err != nil {
		return domain.User{}, nil, err
	}

	hash, err := auth.HashPassword(spec.Password)
	if err != nil {
		return domain.User{}, nil, errors.Wrap(err, errors.CodeValidation, "cannot hash password")
	}

	userID := spec.UserID
	if userID == "" {
		userID, err = id.NewUserID()
		if err != nil {
			return domain.User{}, nil, errors.Wrap(err, errors.CodeInternal, "cannot generate userId")
		}
	}

	starred := make([]bson.ObjectID, 0, len(spec.Starred))
	var skipped []string
	for _, s := range spec.Starred {
		oid, err := bson.ObjectIDFromHex(s)
		if err != nil {
			skipped = append(skipped, s)
			continue
		}
		starred = append(starred, oid)
	}

	user := domain.User{
		UserID:          userID,
		Username:        spec.Username,
		Email:           strings.ToLower(spec.Email),
		Password:        hash,
		PhoneNum:        spec.PhoneNum,
		Address:         spec.Address,
		SignupDate:      spec.SignupDate,
		SuggestedNum:    0,
		StarredItem:     starred,
		Messages:        []any{},
		PremadeMessages: append([]string(nil), spec.Premade...),
		Notification:    spec.Notification,
		BlockedUsers:    append([]string(nil), spec.Blocked...),
		Pfp:             domain.NewProfilePicture(spec.PfpURL),
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}

	if user.PremadeMessages == nil {
		user.PremadeMessages = []string{}
	}
	if user.BlockedUsers == nil {
		user.BlockedUsers = []string{}
	}

	return user, skipped, nil
}
