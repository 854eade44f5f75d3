package usecase

import (
	"context"
	"fmt"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/aroundhq/aroundb/internal/metrics"
	"github.com/aroundhq/aroundb/internal/repository"
)

type CardUsecase struct {
	cards repository.CardRepository
}

func NewCardUsecase(cards repository.CardRepository) *CardUsecase {
	return &CardUsecase{cards: cards}
}

func (u *CardUsecase) List(ctx context.Context) ([]*domain.Card, error) {
	cards, err := u.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

func (u *CardUsecase) Create(ctx context.Context, ownerID, name, link string) (*domain.Card, error) {
	card, err := u.cards.Create(ctx, &domain.Card{
		Name:    name,
		Link:    link,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	metrics.CardsCreatedTotal.Inc()
	return card, nil
}

// Delete removes a card on behalf of requesterID. Existence is resolved
// first, ownership second: a missing card is ErrCardNotFound, an existing
// card owned by someone else is ErrNotCardOwner. The order keeps the two
// failures distinguishable.
func (u *CardUsecase) Delete(ctx context.Context, cardID, requesterID string) (*domain.Card, error) {
	card, err := u.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if card.OwnerID != requesterID {
		return nil, domain.ErrNotCardOwner
	}

	// A concurrent delete can still win between the check and here; the
	// loser surfaces ErrCardNotFound, which is acceptable.
	if err := u.cards.Delete(ctx, cardID); err != nil {
		return nil, err
	}
	return card, nil
}

func (u *CardUsecase) Like(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	card, err := u.cards.Like(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	metrics.LikesTotal.WithLabelValues("like").Inc()
	return card, nil
}

func (u *CardUsecase) Unlike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	card, err := u.cards.Unlike(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	metrics.LikesTotal.WithLabelValues("unlike").Inc()
	return card, nil
}
