// Package main provides a tool to seed the well-known test user into the
// cardtraders document store.
//
// The upsert is keyed on email: the first run inserts the document, every
// later run updates it in place, so the tool is safe to re-run after a
// failed deploy or a wiped staging cluster.
//
// Usage:
//
//	export MONGODB_URI="mongodb+srv://<user>:<pass>@<cluster>/?retryWrites=true&w=majority"
//	go run ./cmd/seed-user \
//	  --pfp-url "https://cdn.cardtraders.app/pfp/test-user.png" \
//	  --phone "010-0000-0000" \
//	  --address "서울특별시 어딘가 123" \
//	  --premade "안녕하세요" --premade "구매 가능합니다"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cardtraders/cardtraders-infra/internal/auth"
	"github.com/cardtraders/cardtraders-infra/internal/config"
	"github.com/cardtraders/cardtraders-infra/internal/errors"
	"github.com/cardtraders/cardtraders-infra/internal/logger"
	"github.com/cardtraders/cardtraders-infra/internal/seed"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	email        = flag.String("email", seed.DefaultEmail, "User email (upsert key)")
	password     = flag.String("password", seed.DefaultPassword, "Plaintext password to hash")
	username     = flag.String("username", seed.DefaultUsername, "Username")
	phone        = flag.String("phone", seed.DefaultPhoneNum, "Phone number")
	address      = flag.String("address", seed.DefaultAddress, "Address")
	pfpURL       = flag.String("pfp-url", "", "Profile image URL (https only)")
	notification = flag.Bool("notification", true, "Enable notifications")
	signupDate   = flag.String("signup-date", "", "Signup date as YYYY/MM/DD (default: today)")
	userID       = flag.String("user-id", "", "Force a userId (default: generated)")
	verify       = flag.Bool("verify", true, "Read the document back and verify the password hash")
	envFile      = flag.String("env-file", ".env", "Path to .env file")

	starred stringList
	blocked stringList
	premade stringList
)

func main() {
	flag.Var(&starred, "starred", "Starred uploadedCards ObjectID (repeatable)")
	flag.Var(&blocked, "blocked", "Blocked userId (repeatable)")
	flag.Var(&premade, "premade", "Premade message snippet (repeatable; default: app snippets)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Format:      cfg.Logger.Format,
		Environment: cfg.App.Environment,
	})

	if err := run(cfg, log); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(errors.ExitCode(err))
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	mongoCfg, err := cfg.RequireMongo()
	if err != nil {
		return err
	}

	now := time.Now()
	spec := buildSpec(now)
	user, skippedStarred, err := seed.BuildUserDocument(spec, now)
	if err != nil {
		return err
	}
	for _, s := range skippedStarred {
		log.Warn("skipping invalid ObjectId in --starred", "value", s)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := seed.Connect(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	seeder := seed.New(client.Database(mongoCfg.Database), log)

	if err := seeder.EnsureUserIndexes(ctx); err != nil {
		return err
	}
	if _, err := seeder.UpsertUser(ctx, user); err != nil {
		return err
	}

	if *verify {
		stored, err := seeder.FindUserByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		ok, err := auth.VerifyPassword(stored.Password, spec.Password)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Internal("stored password hash does not verify against the input password")
		}
		log.Info("verified stored password hash", "userId", stored.UserID)
	}

	log.Info("done", "email", user.Email)
	return nil
}

// buildSpec applies the command-line overrides on top of the defaults.
func buildSpec(now time.Time) seed.UserSpec {
	spec := seed.DefaultUserSpec(now)
	spec.Email = *email
	spec.Password = *password
	spec.Username = *username
	spec.PhoneNum = *phone
	spec.Address = *address
	spec.PfpURL = *pfpURL
	spec.Notification = *notification
	spec.UserID = *userID
	spec.Starred = starred
	spec.Blocked = blocked
	if len(premade) > 0 {
		spec.Premade = premade
	}
	if *signupDate != "" {
		spec.SignupDate = *signupDate
	}
	return spec
}
