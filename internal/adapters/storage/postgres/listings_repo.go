package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawmatch/internal/domain/listings"
)

type ListingsRepo struct {
	db *sql.DB
}

func NewListingsRepo(db *sql.DB) *ListingsRepo {
	return &ListingsRepo{db: db}
}

func (r *ListingsRepo) Create(ctx context.Context, l listings.Listing) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO listings (
			id, shelter_id,
			name, age, breed, gender, description,
			vaccination_status, health_status,
			image_urls, voice_url, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		l.ID,
		l.ShelterID,
		l.Name,
		l.Age,
		l.Breed,
		string(l.Gender),
		l.Description,
		l.VaccinationStatus,
		l.HealthStatus,
		l.ImageURLs,
		l.VoiceURL,
		string(l.Status),
		l.CreatedAt,
		l.UpdatedAt,
	)
	return err
}

func (r *ListingsRepo) Update(ctx context.Context, l listings.Listing) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE listings
		SET
			name = $2,
			age = $3,
			breed = $4,
			gender = $5,
			description = $6,
			vaccination_status = $7,
			health_status = $8,
			image_urls = $9,
			voice_url = $10,
			status = $11,
			updated_at = $12
		WHERE id = $1
	`,
		l.ID,
		l.Name,
		l.Age,
		l.Breed,
		string(l.Gender),
		l.Description,
		l.VaccinationStatus,
		l.HealthStatus,
		l.ImageURLs,
		l.VoiceURL,
		string(l.Status),
		l.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return listings.ErrNotFound
	}
	return nil
}

func (r *ListingsRepo) GetByID(ctx context.Context, id string) (listings.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return listings.Listing{}, listings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, selectListing+` WHERE id = $1`, id)

	l, err := scanListing(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return listings.Listing{}, listings.ErrNotFound
		}
		return listings.Listing{}, err
	}
	return l, nil
}

func (r *ListingsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return listings.ErrNotFound
	}
	return nil
}

func (r *ListingsRepo) ListByShelter(ctx context.Context, shelterID string) ([]listings.Listing, error) {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, selectListing+`
		WHERE shelter_id = $1
		ORDER BY created_at DESC
	`, shelterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingsRepo) ListAvailable(ctx context.Context) ([]listings.Listing, error) {
	rows, err := r.db.QueryContext(ctx, selectListing+`
		WHERE status = 'available'
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

const selectListing = `
	SELECT
		id, shelter_id,
		name, age, breed, gender, description,
		vaccination_status, health_status,
		image_urls, voice_url, status,
		created_at, updated_at
	FROM listings
`

func scanListing(scan func(dest ...any) error) (listings.Listing, error) {
	var l listings.Listing
	var gender, status string
	var imageURLs []string

	if err := scan(
		&l.ID,
		&l.ShelterID,
		&l.Name,
		&l.Age,
		&l.Breed,
		&gender,
		&l.Description,
		&l.VaccinationStatus,
		&l.HealthStatus,
		&imageURLs,
		&l.VoiceURL,
		&status,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return listings.Listing{}, err
	}

	l.Gender = listings.Gender(gender)
	l.Status = listings.Status(status)
	l.ImageURLs = imageURLs
	return l, nil
}

func collectListings(rows *sql.Rows) ([]listings.Listing, error) {
	out := make([]listings.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
