package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

// Category classifies a marketplace listing. The set is fixed; the
// relational schema enforces it with a check constraint and writers
// pre-validate so a typo fails before it reaches the engine.
type Category string

const (
	CategorySports  Category = "sports"
	CategoryYugioh  Category = "yugioh"
	CategoryPokemon Category = "pokemon"
	CategoryIdol    Category = "idol"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{CategorySports, CategoryYugioh, CategoryPokemon, CategoryIdol}
}

// Valid reports whether c is a member of the category enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategorySports, CategoryYugioh, CategoryPokemon, CategoryIdol:
		return true
	}
	return false
}

// MarketUser is a row in the marketplace users table.
type MarketUser struct {
	ID          uuid.UUID
	Email       string
	DisplayName *string
	CreatedAt   time.Time
}

// Listing is a row in the marketplace listings table.
//
// The descriptive attributes (Sport, Year, Base, CardType, SetName, Grade)
// apply per category; Sport is only meaningful for sports cards. The schema
// does not cross-validate them and neither do we.
type Listing struct {
	ID          uuid.UUID
	Owner       *uuid.UUID // nil once the owning user is deleted
	Title       string
	Description *string
	Category    Category
	Sport       *string
	Year        *int
	Base        *string
	CardType    *string
	SetName     *string
	Grade       *string
	IsVerified  bool
	Price       *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the writer-side invariants before a listing reaches the
// datastore, so constraint violations surface as clear validation errors
// instead of raw SQLSTATEs.
func (l *Listing) Validate() error {
	if l.Title == "" {
		return errors.Validation("listing title is required")
	}
	if !l.Category.Valid() {
		return errors.Validationf("invalid category %q (must be one of sports, yugioh, pokemon, idol)", l.Category)
	}
	if l.Price != nil && *l.Price < 0 {
		return errors.Validationf("price must not be negative, got %v", *l.Price)
	}
	return nil
}
