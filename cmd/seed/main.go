// seed inserts two demo users and a set of cards into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/aroundhq/aroundb/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

// Both demo accounts share this password.
const seedPassword = "seed-password-1"

type cardSpec struct {
	name string
	link string
}

var cards = []cardSpec{
	{"Yosemite Valley", "https://images.unsplash.com/photo-1472396961693-142e6e269027"},
	{"Lago di Braies", "https://images.unsplash.com/photo-1439853949127-fa647821eba0"},
	{"Bald Mountains", "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b"},
	{"Latemar", "https://images.unsplash.com/photo-1454496522488-7a8e488e8606"},
	{"Vanoise National Park", "https://images.unsplash.com/photo-1433086966358-54859d0ed716"},
	{"Lago di Carezza", "https://images.unsplash.com/photo-1505765050516-f72dcac9c60e"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	users := postgres.NewUserRepository(pool)

	jacques, err := users.Create(ctx, &domain.User{
		Email:        "jacques@seed.local",
		PasswordHash: string(hash),
		Name:         domain.DefaultName,
		About:        domain.DefaultAbout,
		Avatar:       domain.DefaultAvatar,
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		log.Println("database already seeded, nothing to do")
		return
	}
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	marie, err := users.Create(ctx, &domain.User{
		Email:        "marie@seed.local",
		PasswordHash: string(hash),
		Name:         "Marie Tharp",
		About:        "Oceanographer",
		Avatar:       domain.DefaultAvatar,
	})
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	repo := postgres.NewCardRepository(pool)

	owners := []string{jacques.ID, marie.ID}
	for i, spec := range cards {
		card, err := repo.Create(ctx, &domain.Card{
			Name:    spec.name,
			Link:    spec.link,
			OwnerID: owners[i%len(owners)],
		})
		if err != nil {
			log.Fatalf("seed card %q: %v", spec.name, err)
		}

		// Every other card gets a like from the non-owner.
		if i%2 == 0 {
			if _, err := repo.Like(ctx, card.ID, owners[(i+1)%len(owners)]); err != nil {
				log.Fatalf("seed like: %v", err)
			}
		}
	}

	log.Printf("seeded 2 users (password %q) and %d cards", seedPassword, len(cards))
}
