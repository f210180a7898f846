package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawmatch/internal/domain/interests"
)

type InterestsRepo struct {
	db *sql.DB
}

func NewInterestsRepo(db *sql.DB) *InterestsRepo {
	return &InterestsRepo{db: db}
}

func (r *InterestsRepo) Create(ctx context.Context, i interests.Interest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interests (id, adopter_id, listing_id, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		i.ID,
		i.AdopterID,
		i.ListingID,
		i.CreatedAt,
	)
	return err
}

func (r *InterestsRepo) GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (interests.Interest, error) {
	adopterID = strings.TrimSpace(adopterID)
	listingID = strings.TrimSpace(listingID)
	if adopterID == "" || listingID == "" {
		return interests.Interest{}, interests.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, adopter_id, listing_id, created_at
		FROM interests
		WHERE adopter_id = $1 AND listing_id = $2
		LIMIT 1
	`, adopterID, listingID)

	var i interests.Interest
	if err := row.Scan(&i.ID, &i.AdopterID, &i.ListingID, &i.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return interests.Interest{}, interests.ErrNotFound
		}
		return interests.Interest{}, err
	}
	return i, nil
}

func (r *InterestsRepo) ListByAdopter(ctx context.Context, adopterID string) ([]interests.Interest, error) {
	adopterID = strings.TrimSpace(adopterID)
	if adopterID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, adopter_id, listing_id, created_at
		FROM interests
		WHERE adopter_id = $1
		ORDER BY created_at ASC
	`, adopterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]interests.Interest, 0)
	for rows.Next() {
		var i interests.Interest
		if err := rows.Scan(&i.ID, &i.AdopterID, &i.ListingID, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}
