package repository

import (
	"context"

	"github.com/aroundhq/aroundb/internal/domain"
)

type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	// List returns all cards newest-first.
	List(ctx context.Context) ([]*domain.Card, error)
	Delete(ctx context.Context, id string) error

	// Like and Unlike are idempotent set operations: repeating either
	// leaves the likes set unchanged. Both return the resulting card and
	// domain.ErrCardNotFound if the card is gone.
	Like(ctx context.Context, cardID, userID string) (*domain.Card, error)
	Unlike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}
