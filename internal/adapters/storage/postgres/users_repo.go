package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawmatch/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, identity_key,
			name, email, role, address, phone, image_url,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		u.ID,
		u.IdentityKey,
		u.Name,
		u.Email,
		string(u.Role),
		u.Address,
		u.Phone,
		u.ImageURL,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			name = $2,
			email = $3,
			role = $4,
			address = $5,
			phone = $6,
			image_url = $7,
			updated_at = $8
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.Email,
		string(u.Role),
		u.Address,
		u.Phone,
		u.ImageURL,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *UsersRepo) GetByIdentityKey(ctx context.Context, identityKey string) (users.User, error) {
	identityKey = strings.TrimSpace(identityKey)
	if identityKey == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, selectUser+` WHERE identity_key = $1`, identityKey))
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

const selectUser = `
	SELECT
		id, identity_key,
		name, email, role, address, phone, image_url,
		created_at, updated_at
	FROM users
`

func (r *UsersRepo) scanOne(row *sql.Row) (users.User, error) {
	var u users.User
	var role string

	if err := row.Scan(
		&u.ID,
		&u.IdentityKey,
		&u.Name,
		&u.Email,
		&role,
		&u.Address,
		&u.Phone,
		&u.ImageURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	u.Role = users.Role(role)
	return u, nil
}
