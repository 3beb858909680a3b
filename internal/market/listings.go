package market

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardtraders/cardtraders-infra/internal/domain"
	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

// searchExpr is the exact expression the trigram index is built over;
// queries must match it to use the index.
const searchExpr = `title || ' ' || coalesce(description, '') || ' ' || coalesce(set_name, '')`

const listingColumns = `id, owner, title, description, category, sport, year, base,
	card_type, set_name, grade, is_verified, price, created_at, updated_at`

// ListingRepo reads and writes the marketplace listings table.
type ListingRepo struct {
	db *pgxpool.Pool
}

// NewListingRepo creates a ListingRepo on the given pool.
func NewListingRepo(db *pgxpool.Pool) *ListingRepo {
	return &ListingRepo{db: db}
}

// Create inserts a listing and returns it with the generated id and
// timestamps filled in. The listing is validated first so category typos
// fail as validation errors before the check constraint sees them.
func (r *ListingRepo) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	stored := *l
	err := r.db.QueryRow(ctx, `
		INSERT INTO listings (owner, title, description, category, sport, year,
			base, card_type, set_name, grade, is_verified, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, l.Owner, l.Title, l.Description, l.Category, l.Sport, l.Year,
		l.Base, l.CardType, l.SetName, l.Grade, l.IsVerified, l.Price,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, classifyPgErr(err, "create listing "+l.Title)
	}
	return &stored, nil
}

// Get fetches a listing by id.
func (r *ListingRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, classifyPgErr(err, "listing "+id.String())
	}
	l, err := pgx.CollectOneRow(rows, scanListing)
	if err != nil {
		return nil, classifyPgErr(err, "listing "+id.String())
	}
	return l, nil
}

// Update rewrites the mutable listing fields and refreshes updated_at.
// Nothing in the schema bumps updated_at on its own, so every mutation has
// to go through here.
func (r *ListingRepo) Update(ctx context.Context, l *domain.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}

	err := r.db.QueryRow(ctx, `
		UPDATE listings SET
			owner = $2,
			title = $3,
			description = $4,
			category = $5,
			sport = $6,
			year = $7,
			base = $8,
			card_type = $9,
			set_name = $10,
			grade = $11,
			is_verified = $12,
			price = $13,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, l.ID, l.Owner, l.Title, l.Description, l.Category, l.Sport, l.Year,
		l.Base, l.CardType, l.SetName, l.Grade, l.IsVerified, l.Price,
	).Scan(&l.UpdatedAt)
	if err != nil {
		return classifyPgErr(err, "update listing "+l.ID.String())
	}
	return nil
}

// SearchResult is a listing with its similarity score for the query.
type SearchResult struct {
	Listing    domain.Listing
	Similarity float32
}

// Search finds listings whose title, description, or set name contains the
// query or is trigram-similar to it, best match first. word_similarity
// compares the query against the best-matching extent of the indexed text,
// which is what makes a typo'd substring of a long row still match. Both
// predicates are served by the GIN trigram index.
func (r *ListingRepo) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if query == "" {
		return nil, errors.Validation("search query is required")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+listingColumns+`,
			word_similarity($1, `+searchExpr+`) AS sim
		FROM listings
		WHERE `+searchExpr+` ILIKE '%' || $1 || '%'
			OR $1 <% `+searchExpr+`
		ORDER BY sim DESC, created_at DESC
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, classifyPgErr(err, "search listings")
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var res SearchResult
		l := &res.Listing
		if err := rows.Scan(
			&l.ID, &l.Owner, &l.Title, &l.Description, &l.Category, &l.Sport,
			&l.Year, &l.Base, &l.CardType, &l.SetName, &l.Grade, &l.IsVerified,
			&l.Price, &l.CreatedAt, &l.UpdatedAt, &res.Similarity,
		); err != nil {
			return nil, classifyPgErr(err, "scan search result")
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr(err, "search listings")
	}
	return results, nil
}

// scanListing adapts a row to a Listing for pgx.CollectOneRow.
func scanListing(row pgx.CollectableRow) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := row.Scan(
		&l.ID, &l.Owner, &l.Title, &l.Description, &l.Category, &l.Sport,
		&l.Year, &l.Base, &l.CardType, &l.SetName, &l.Grade, &l.IsVerified,
		&l.Price, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}
