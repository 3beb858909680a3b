package market

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardtraders/cardtraders-infra/internal/domain"
	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

// UserRepo reads and writes the marketplace users table.
type UserRepo struct {
	db *pgxpool.Pool
}

// NewUserRepo creates a UserRepo on the given pool.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user and returns the stored row. A duplicate email
// surfaces as a conflict error.
func (r *UserRepo) Create(ctx context.Context, email string, displayName *string) (*domain.MarketUser, error) {
	if email == "" {
		return nil, errors.Validation("email is required")
	}

	u := &domain.MarketUser{Email: email, DisplayName: displayName}
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, display_name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, email, displayName).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, classifyPgErr(err, "create user "+email)
	}
	return u, nil
}

// UpsertByEmail inserts the user or, when the email already exists, updates
// the display name. Matches the seeding semantics of the document store:
// matched by email, id immutable once created.
func (r *UserRepo) UpsertByEmail(ctx context.Context, email string, displayName *string) (*domain.MarketUser, error) {
	if email == "" {
		return nil, errors.Validation("email is required")
	}

	u := &domain.MarketUser{Email: email}
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, display_name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET
			display_name = COALESCE(EXCLUDED.display_name, users.display_name)
		RETURNING id, display_name, created_at
	`, email, displayName).Scan(&u.ID, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		return nil, classifyPgErr(err, "upsert user "+email)
	}
	return u, nil
}

// GetByEmail fetches a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.MarketUser, error) {
	u := &domain.MarketUser{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, display_name, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		return nil, classifyPgErr(err, "user "+email)
	}
	return u, nil
}

// Delete removes a user. Listings owned by the user keep existing with a
// null owner (ON DELETE SET NULL).
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return classifyPgErr(err, "delete user "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFoundf("no user with id %s", id)
	}
	return nil
}
