// Package domain holds the entity types shared by the cardtraders
// infrastructure tools: the document-store user and card models, and the
// relational marketplace models.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ProfilePicture references externally hosted image content. Binary image
// data never goes into the document store; clients load the URL from a CDN.
type ProfilePicture struct {
	URL     *string `bson:"url"`
	Storage *string `bson:"storage"` // "url" when URL is set, nil otherwise
}

// NewProfilePicture builds the pfp subdocument for an optional image URL.
func NewProfilePicture(url string) ProfilePicture {
	if url == "" {
		return ProfilePicture{}
	}
	storage := "url"
	return ProfilePicture{URL: &url, Storage: &storage}
}

// User is the user document in the cardtraders document store
// (database cardtraders, collection users).
//
// Conversations and messages live in their own collections keyed by
// participant set and conversation respectively; Messages here only carries
// lightweight conversation metadata. The cached unread count can drift from
// the messages collection and is reconciled by the message delivery service.
type User struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	UserID   string        `bson:"userId"`
	Username string        `bson:"username"`
	Email    string        `bson:"email"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `bson:"password"`
	PhoneNum string `bson:"phone_num"`
	Address  string `bson:"address"`
	// SignupDate is kept as a YYYY/MM/DD string for compatibility with the
	// documents the mobile app already writes.
	SignupDate   string `bson:"signup_date"`
	SuggestedNum int    `bson:"suggested_num"`
	// StarredItem references uploadedCards documents, in the order starred.
	StarredItem     []bson.ObjectID `bson:"starred_item"`
	Messages        []any           `bson:"messages"`
	PremadeMessages []string        `bson:"premade_messages"`
	Notification    bool            `bson:"notification"`
	// BlockedUsers holds userId strings whose DMs and visibility are
	// suppressed for this user.
	BlockedUsers []string       `bson:"blocked_users"`
	Pfp          ProfilePicture `bson:"pfp"`
	CreatedAt    time.Time      `bson:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt"`
}
