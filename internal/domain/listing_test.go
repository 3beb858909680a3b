package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

func TestCategory_Valid(t *testing.T) {
	tests := []struct {
		category Category
		valid    bool
	}{
		{CategorySports, true},
		{CategoryYugioh, true},
		{CategoryPokemon, true},
		{CategoryIdol, true},
		{"baseball", false},
		{"POKEMON", false}, // case sensitive, matches the check constraint
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.category.Valid())
		})
	}
}

func TestCategories_CoversEnumeration(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 4)
	for _, c := range cats {
		assert.True(t, c.Valid())
	}
}

func TestListing_Validate(t *testing.T) {
	price := 120.50
	negative := -1.0

	tests := []struct {
		name    string
		listing Listing
		wantErr bool
	}{
		{
			name:    "valid sports listing",
			listing: Listing{Title: "1996 Topps Kobe Bryant RC", Category: CategorySports, Price: &price},
		},
		{
			name:    "valid without optional fields",
			listing: Listing{Title: "Pikachu Illustration Rare", Category: CategoryPokemon},
		},
		{
			name:    "missing title",
			listing: Listing{Category: CategoryPokemon},
			wantErr: true,
		},
		{
			name:    "bad category",
			listing: Listing{Title: "something", Category: "baseball"},
			wantErr: true,
		},
		{
			name:    "negative price",
			listing: Listing{Title: "something", Category: CategoryIdol, Price: &negative},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.listing.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrValidation), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProfilePicture(t *testing.T) {
	t.Run("with url", func(t *testing.T) {
		pfp := NewProfilePicture("https://cdn.cardtraders.app/pfp/test.png")
		if assert.NotNil(t, pfp.URL) {
			assert.Equal(t, "https://cdn.cardtraders.app/pfp/test.png", *pfp.URL)
		}
		if assert.NotNil(t, pfp.Storage) {
			assert.Equal(t, "url", *pfp.Storage)
		}
	})

	t.Run("without url", func(t *testing.T) {
		pfp := NewProfilePicture("")
		assert.Nil(t, pfp.URL)
		assert.Nil(t, pfp.Storage)
	})
}
