// Package main provides a tool to seed an uploadedCards document into the
// cardtraders document store, assigning its numeric id from the counters
// collection the same way the app does on upload.
//
// Usage:
//
//	export MONGODB_URI="mongodb+srv://<user>:<pass>@<cluster>/?retryWrites=true&w=majority"
//	go run ./cmd/seed-card --category pokemon --name "Pikachu" --set "SVP" --card-num "085"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cardtraders/cardtraders-infra/internal/config"
	"github.com/cardtraders/cardtraders-infra/internal/domain"
	"github.com/cardtraders/cardtraders-infra/internal/errors"
	"github.com/cardtraders/cardtraders-infra/internal/logger"
	"github.com/cardtraders/cardtraders-infra/internal/seed"
)

var (
	category = flag.String("category", string(domain.CategoryPokemon),
		"Card category ("+strings.Join(categoryNames(), ", ")+")")
	name     = flag.String("name", "Pikachu", "Card name")
	rarity   = flag.String("rarity", "Illustration Rare", "Rarity")
	language = flag.String("language", "en", "Card language")
	set      = flag.String("set", "SVP Black Star Promos", "Set name")
	cardNum  = flag.String("card-num", "085", "Card number within the set")
	envFile  = flag.String("env-file", ".env", "Path to .env file")
)

func main() {
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

	card := domain.UploadedCard{
		Category: domain.Category(*category),
		CardName: *name,
		Rarity:   *rarity,
		Language: *language,
		Set:      *set,
		CardNum:  *cardNum,
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

	inserted, err := seeder.InsertCard(ctx, card)
	if err != nil {
		return err
	}

	log.Info("done", "id", inserted.ID, "name", inserted.CardName)
	return nil
}

func categoryNames() []string {
	cats := domain.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}
