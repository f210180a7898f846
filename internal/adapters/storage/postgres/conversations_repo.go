package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawmatch/internal/domain/conversations"
)

type ConversationsRepo struct {
	db *sql.DB
}

func NewConversationsRepo(db *sql.DB) *ConversationsRepo {
	return &ConversationsRepo{db: db}
}

func (r *ConversationsRepo) Create(ctx context.Context, c conversations.Conversation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversations (id, adopter_id, shelter_id, listing_id, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		c.ID,
		c.AdopterID,
		c.ShelterID,
		c.ListingID,
		c.CreatedAt,
	)
	return err
}

func (r *ConversationsRepo) GetByID(ctx context.Context, id string) (conversations.Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return conversations.Conversation{}, conversations.ErrNotFound
	}
	return scanConversation(r.db.QueryRowContext(ctx, selectConversation+` WHERE id = $1`, id))
}

func (r *ConversationsRepo) GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (conversations.Conversation, error) {
	adopterID = strings.TrimSpace(adopterID)
	listingID = strings.TrimSpace(listingID)
	if adopterID == "" || listingID == "" {
		return conversations.Conversation{}, conversations.ErrNotFound
	}
	return scanConversation(r.db.QueryRowContext(ctx, selectConversation+`
		WHERE adopter_id = $1 AND listing_id = $2
		LIMIT 1
	`, adopterID, listingID))
}

func (r *ConversationsRepo) ListByAdopter(ctx context.Context, adopterID string) ([]conversations.Conversation, error) {
	return r.list(ctx, `adopter_id`, adopterID)
}

func (r *ConversationsRepo) ListByShelter(ctx context.Context, shelterID string) ([]conversations.Conversation, error) {
	return r.list(ctx, `shelter_id`, shelterID)
}

const selectConversation = `
	SELECT id, adopter_id, shelter_id, listing_id, created_at
	FROM conversations
`

func (r *ConversationsRepo) list(ctx context.Context, column, value string) ([]conversations.Conversation, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, selectConversation+` WHERE `+column+` = $1`, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]conversations.Conversation, 0)
	for rows.Next() {
		var c conversations.Conversation
		if err := rows.Scan(&c.ID, &c.AdopterID, &c.ShelterID, &c.ListingID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConversation(row *sql.Row) (conversations.Conversation, error) {
	var c conversations.Conversation
	if err := row.Scan(&c.ID, &c.AdopterID, &c.ShelterID, &c.ListingID, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return conversations.Conversation{}, conversations.ErrNotFound
		}
		return conversations.Conversation{}, err
	}
	return c, nil
}
