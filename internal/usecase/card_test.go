package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/aroundhq/aroundb/internal/usecase"
)

type fakeCardRepo struct {
	create  func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	getByID func(ctx context.Context, id string) (*domain.Card, error)
	list    func(ctx context.Context) ([]*domain.Card, error)
	delete  func(ctx context.Context, id string) error
	like    func(ctx context.Context, cardID, userID string) (*domain.Card, error)
	unlike  func(ctx context.Context, cardID, userID string) (*domain.Card, error)
}

func (r *fakeCardRepo) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	return r.create(ctx, card)
}

func (r *fakeCardRepo) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	return r.getByID(ctx, id)
}

func (r *fakeCardRepo) List(ctx context.Context) ([]*domain.Card, error) {
	return r.list(ctx)
}

func (r *fakeCardRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *fakeCardRepo) Like(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.like(ctx, cardID, userID)
}

func (r *fakeCardRepo) Unlike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.unlike(ctx, cardID, userID)
}

func TestCreate_OwnerIsRequester(t *testing.T) {
	var created *domain.Card
	repo := &fakeCardRepo{
		create: func(_ context.Context, card *domain.Card) (*domain.Card, error) {
			created = card
			return card, nil
		},
	}

	_, err := usecase.NewCardUsecase(repo).Create(context.Background(), "user-1", "Mountain", "https://x.test/m.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OwnerID != "user-1" {
		t.Errorf("owner = %q, want user-1", created.OwnerID)
	}
}

func TestDelete_MissingCard_ReturnsNotFound(t *testing.T) {
	repo := &fakeCardRepo{
		getByID: func(_ context.Context, _ string) (*domain.Card, error) {
			return nil, domain.ErrCardNotFound
		},
		delete: func(_ context.Context, _ string) error {
			t.Fatal("delete must not run for a missing card")
			return nil
		},
	}

	_, err := usecase.NewCardUsecase(repo).Delete(context.Background(), "card-1", "user-1")
	if !errors.Is(err, domain.ErrCardNotFound) {
		t.Errorf("want ErrCardNotFound, got %v", err)
	}
}

func TestDelete_NonOwner_ReturnsNotCardOwner(t *testing.T) {
	repo := &fakeCardRepo{
		getByID: func(_ context.Context, id string) (*domain.Card, error) {
			return &domain.Card{ID: id, OwnerID: "user-1"}, nil
		},
		delete: func(_ context.Context, _ string) error {
			t.Fatal("delete must not run for a non-owner")
			return nil
		},
	}

	_, err := usecase.NewCardUsecase(repo).Delete(context.Background(), "card-1", "user-2")
	if !errors.Is(err, domain.ErrNotCardOwner) {
		t.Errorf("want ErrNotCardOwner, got %v", err)
	}
}

func TestDelete_Owner_DeletesAndReturnsCard(t *testing.T) {
	deleted := false
	repo := &fakeCardRepo{
		getByID: func(_ context.Context, id string) (*domain.Card, error) {
			return &domain.Card{ID: id, OwnerID: "user-1", Name: "Mountain"}, nil
		},
		delete: func(_ context.Context, _ string) error {
			deleted = true
			return nil
		},
	}

	card, err := usecase.NewCardUsecase(repo).Delete(context.Background(), "card-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("repo delete was not called")
	}
	if card.Name != "Mountain" {
		t.Errorf("returned card = %+v", card)
	}
}

func TestDelete_LostRace_SurfacesNotFound(t *testing.T) {
	repo := &fakeCardRepo{
		getByID: func(_ context.Context, id string) (*domain.Card, error) {
			return &domain.Card{ID: id, OwnerID: "user-1"}, nil
		},
		delete: func(_ context.Context, _ string) error {
			// Another request deleted the card between the ownership
			// check and the delete.
			return domain.ErrCardNotFound
		},
	}

	_, err := usecase.NewCardUsecase(repo).Delete(context.Background(), "card-1", "user-1")
	if !errors.Is(err, domain.ErrCardNotFound) {
		t.Errorf("want ErrCardNotFound, got %v", err)
	}
}

func TestLike_MissingCard_ReturnsNotFound(t *testing.T) {
	repo := &fakeCardRepo{
		like: func(_ context.Context, _, _ string) (*domain.Card, error) {
			return nil, domain.ErrCardNotFound
		},
	}

	_, err := usecase.NewCardUsecase(repo).Like(context.Background(), "card-1", "user-1")
	if !errors.Is(err, domain.ErrCardNotFound) {
		t.Errorf("want ErrCardNotFound, got %v", err)
	}
}

func TestLike_ReturnsUpdatedLikesSet(t *testing.T) {
	repo := &fakeCardRepo{
		like: func(_ context.Context, cardID, userID string) (*domain.Card, error) {
			return &domain.Card{ID: cardID, Likes: []string{userID}}, nil
		},
	}

	card, err := usecase.NewCardUsecase(repo).Like(context.Background(), "card-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !card.LikedBy("user-1") {
		t.Error("card not liked by user-1 after Like")
	}
}
