package seed

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/cardtraders/cardtraders-infra/internal/config"
	"github.com/cardtraders/cardtraders-infra/internal/domain"
	"github.com/cardtraders/cardtraders-infra/internal/errors"
	"github.com/cardtraders/cardtraders-infra/internal/logger"
)

// Collection names in the cardtraders database.
const (
	usersCollection    = "users"
	cardsCollection    = "uploadedCards"
	countersCollection = "counters"
)

const connectTimeout = 10 * time.Second

// Connect opens a client for the configured document store and verifies the
// connection with a ping, so a bad URI or credentials fail here with a
// classified error rather than on the first write.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, "invalid document store connection string")
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, classifyMongoErr(err, "cannot reach document store")
	}

	return client, nil
}

// Seeder writes seed fixtures into one cardtraders database.
type Seeder struct {
	db  *mongo.Database
	log *logger.Logger
}

// New creates a Seeder for the given database.
func New(db *mongo.Database, log *logger.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// EnsureUserIndexes creates the unique indexes the upsert relies on.
// Index creation is idempotent; re-running against a provisioned cluster
// is a no-op.
func (s *Seeder) EnsureUserIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_userId"),
		},
	})
	if err != nil {
		return classifyMongoErr(err, "cannot create user indexes")
	}
	return nil
}

// UpsertUser writes the user document keyed on email: insert when absent,
// update every provided field when present. The userId only applies on
// insert so re-seeding never rotates an existing user's identifier.
// Returns true when a new document was inserted.
func (s *Seeder) UpsertUser(ctx context.Context, user domain.User) (bool, error) {
	update := bson.M{
		"$set": bson.M{
			"username":         user.Username,
			"email":            user.Email,
			"password":         user.Password,
			"phone_num":        user.PhoneNum,
			"address":          user.Address,
			"signup_date":      user.SignupDate,
			"suggested_num":    user.SuggestedNum,
			"starred_item":     user.StarredItem,
			"messages":         user.Messages,
			"premade_messages": user.PremadeMessages,
			"notification":     user.Notification,
			"blocked_users":    user.BlockedUsers,
			"pfp":              user.Pfp,
			"updatedAt":        user.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"userId":    user.UserID,
			"createdAt": user.CreatedAt,
		},
	}

	res, err := s.db.Collection(usersCollection).UpdateOne(
		ctx,
		bson.M{"email": user.Email},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return false, classifyMongoErr(err, "upsert user "+user.Email)
	}

	inserted := res.UpsertedID != nil
	if inserted {
		s.log.Info("inserted user", "email", user.Email, "userId", user.UserID)
	} else {
		s.log.Info("updated user", "email", user.Email)
	}
	return inserted, nil
}

// FindUserByEmail fetches a seeded user document, mainly for post-seed
// verification.
func (s *Seeder) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(usersCollection).
		FindOne(ctx, bson.M{"email": strings.ToLower(email)}).
		Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NotFoundf("no user with email %s", email)
		}
		return nil, classifyMongoErr(err, "find user "+email)
	}
	return &user, nil
}

// NextSequence returns the next value of a named counter, creating the
// counter on first use. Backed by findOneAndUpdate with $inc so concurrent
// callers never see the same value.
func (s *Seeder) NextSequence(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.db.Collection(countersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, classifyMongoErr(err, "next sequence for "+name)
	}
	return counter.Seq, nil
}

// InsertCard inserts an uploadedCards document, assigning its numeric id
// from the uploadedCards counter when unset.
func (s *Seeder) InsertCard(ctx context.Context, card domain.UploadedCard) (domain.UploadedCard, error) {
	if !card.Category.Valid() {
		return card, errors.Validationf("invalid category %q (must be one of sports, yugioh, pokemon, idol)", card.Category)
	}

	if card.ID == 0 {
		seq, err := s.NextSequence(ctx, cardsCollection)
		if err != nil {
			return card, err
		}
		card.ID = seq
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}

	if _, err := s.db.Collection(cardsCollection).InsertOne(ctx, card); err != nil {
		return card, classifyMongoErr(err, "insert card "+card.CardName)
	}

	s.log.Info("inserted card", "id", card.ID, "name", card.CardName, "category", string(card.Category))
	return card, nil
}

// classifyMongoErr maps driver errors onto the tool error taxonomy so each
// failure class exits with its own status.
func classifyMongoErr(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(err, errors.CodeConflict, msg+": duplicate key")
	case isAuthError(err):
		return errors.Wrap(err, errors.CodeAuth, msg+": authentication failed")
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return errors.Wrap(err, errors.CodeConnect, msg+": datastore unreachable")
	default:
		return errors.Wrap(err, errors.CodeInternal, msg)
	}
}

// isAuthError detects authentication failures, which the server reports as
// command error 18 (AuthenticationFailed) or, during the SCRAM handshake,
// as a wrapped "auth error" from the driver.
func isAuthError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 18 || cmdErr.Name == "AuthenticationFailed"
	}
	return strings.Contains(err.Error(), "auth error") ||
		strings.Contains(err.Error(), "AuthenticationFailed")
}
