package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// cardSelect aggregates the likes set in the same query so every read
// returns a complete card. COALESCE keeps the array non-NULL for cards
// with no likes.
const cardSelect = `
	SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
	       COALESCE(array_agg(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}')
	FROM cards c
	LEFT JOIN card_likes l ON l.card_id = c.id`

type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `
		INSERT INTO cards (name, link, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, link, owner_id, created_at`

	var c domain.Card
	err := r.pool.QueryRow(ctx, query, card.Name, card.Link, card.OwnerID).
		Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	c.Likes = []string{}
	return &c, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	query := cardSelect + `
	WHERE c.id = $1
	GROUP BY c.id`

	return scanCard(r.pool.QueryRow(ctx, query, id))
}

func (r *CardRepository) List(ctx context.Context) ([]*domain.Card, error) {
	query := cardSelect + `
	GROUP BY c.id
	ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

// Like adds userID to the card's likes set. ON CONFLICT DO NOTHING makes
// the insert a no-op when the like already exists, so concurrent likes
// never lose updates and repeats never grow the set.
func (r *CardRepository) Like(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO card_likes (card_id, user_id)
		SELECT $1, $2 WHERE EXISTS (SELECT 1 FROM cards WHERE id = $1)
		ON CONFLICT (card_id, user_id) DO NOTHING`,
		cardID, userID)
	if err != nil {
		return nil, fmt.Errorf("like card: %w", err)
	}
	return r.GetByID(ctx, cardID)
}

// Unlike removes userID from the likes set. Deleting an absent row is a
// no-op that still succeeds.
func (r *CardRepository) Unlike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`,
		cardID, userID)
	if err != nil {
		return nil, fmt.Errorf("unlike card: %w", err)
	}
	return r.GetByID(ctx, cardID)
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.CreatedAt, &c.Likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("scan card: %w", err)
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return &c, nil
}
