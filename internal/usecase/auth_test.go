package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/aroundhq/aroundb/internal/token"
	"github.com/aroundhq/aroundb/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

// ---- fakes ----

type fakeUserRepo struct {
	create        func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByID      func(ctx context.Context, id string) (*domain.User, error)
	findByEmail   func(ctx context.Context, email string) (*domain.User, error)
	list          func(ctx context.Context) ([]*domain.User, error)
	updateProfile func(ctx context.Context, id, name, about string) (*domain.User, error)
	updateAvatar  func(ctx context.Context, id, avatar string) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.create(ctx, user)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx)
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	return r.updateProfile(ctx, id, name, about)
}

func (r *fakeUserRepo) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return r.updateAvatar(ctx, id, avatar)
}

type fakeEmailSender struct {
	sent chan string
}

func (s *fakeEmailSender) Send(_ context.Context, to, _, _ string) error {
	if s.sent != nil {
		s.sent <- to
	}
	return nil
}

// ---- helpers ----

const testJWTKey = "test-jwt-secret-at-least-32-chars!!"

func newAuthUsecase(repo *fakeUserRepo, sender *fakeEmailSender) *usecase.AuthUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewManager([]byte(testJWTKey))
	return usecase.NewAuthUsecase(repo, tokens, sender, bcrypt.MinCost, logger)
}

func validSignup() usecase.SignupInput {
	return usecase.SignupInput{Email: "test@example.com", Password: "correct horse battery"}
}

// ---- Signup ----

func TestSignup_StoresBcryptHashNotPlaintext(t *testing.T) {
	var storedHash string
	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			storedHash = user.PasswordHash
			out := *user
			out.ID = "user-1"
			return &out, nil
		},
	}

	input := validSignup()
	if _, err := newAuthUsecase(repo, &fakeEmailSender{}).Signup(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if storedHash == input.Password {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input.Password)); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestSignup_ReturnedUserHasNoHash(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			out := *user
			out.ID = "user-1"
			return &out, nil
		},
	}

	user, err := newAuthUsecase(repo, &fakeEmailSender{}).Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("signup result carries the password hash")
	}
}

func TestSignup_AppliesProfileDefaults(t *testing.T) {
	var created *domain.User
	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			created = user
			out := *user
			out.ID = "user-1"
			return &out, nil
		},
	}

	if _, err := newAuthUsecase(repo, &fakeEmailSender{}).Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Name != domain.DefaultName {
		t.Errorf("name = %q, want default %q", created.Name, domain.DefaultName)
	}
	if created.About != domain.DefaultAbout {
		t.Errorf("about = %q, want default %q", created.About, domain.DefaultAbout)
	}
	if created.Avatar != domain.DefaultAvatar {
		t.Errorf("avatar = %q, want default", created.Avatar)
	}
}

func TestSignup_KeepsProvidedProfileFields(t *testing.T) {
	var created *domain.User
	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			created = user
			return user, nil
		},
	}

	input := validSignup()
	input.Name = "Marie Tharp"
	input.About = "Oceanographer"

	if _, err := newAuthUsecase(repo, &fakeEmailSender{}).Signup(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Name != "Marie Tharp" || created.About != "Oceanographer" {
		t.Errorf("provided fields overwritten: name=%q about=%q", created.Name, created.About)
	}
}

func TestSignup_DuplicateEmail_ReturnsEmailTaken(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}

	_, err := newAuthUsecase(repo, &fakeEmailSender{}).Signup(context.Background(), validSignup())
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("want ErrEmailTaken, got %v", err)
	}
}

func TestSignup_TrivialPassword_Rejected(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			t.Fatal("create must not be reached for a weak password")
			return nil, nil
		},
	}

	input := validSignup()
	input.Password = "11111111"

	_, err := newAuthUsecase(repo, &fakeEmailSender{}).Signup(context.Background(), input)
	if !errors.Is(err, domain.ErrWeakPassword) {
		t.Errorf("want ErrWeakPassword, got %v", err)
	}
}

func TestSignup_SendsWelcomeEmail(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			return user, nil
		},
	}
	sender := &fakeEmailSender{sent: make(chan string, 1)}

	if _, err := newAuthUsecase(repo, sender).Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case to := <-sender.sent:
		if to != "test@example.com" {
			t.Errorf("email sent to %q", to)
		}
	case <-time.After(time.Second):
		t.Error("welcome email was never sent")
	}
}

// ---- Login ----

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func TestLogin_UnknownEmail_ReturnsInvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	_, err := newAuthUsecase(repo, &fakeEmailSender{}).Login(context.Background(), "ghost@example.com", "whatever-pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword_ReturnsInvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", PasswordHash: hashOf(t, "right-password")}, nil
		},
	}

	_, err := newAuthUsecase(repo, &fakeEmailSender{}).Login(context.Background(), "test@example.com", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success_IssuesVerifiableToken(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", PasswordHash: hashOf(t, "right-password")}, nil
		},
	}

	signed, err := newAuthUsecase(repo, &fakeEmailSender{}).Login(context.Background(), "test@example.com", "right-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, err := token.NewManager([]byte(testJWTKey)).Verify(signed)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if sub != "user-1" {
		t.Errorf("token subject = %q, want user-1", sub)
	}
}
