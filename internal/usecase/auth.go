package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/aroundhq/aroundb/internal/email"
	"github.com/aroundhq/aroundb/internal/metrics"
	"github.com/aroundhq/aroundb/internal/repository"
	"github.com/aroundhq/aroundb/internal/token"
	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordEntropy rejects trivially guessable passwords (e.g. all-digit
// or single-repeated-character strings) while keeping the 8-char floor
// enforced at the transport layer as the primary rule.
const minPasswordEntropy = 30

type AuthUsecase struct {
	users      repository.UserRepository
	tokens     *token.Manager
	email      email.Sender
	bcryptCost int
	logger     *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens *token.Manager, emailSender email.Sender, bcryptCost int, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		tokens:     tokens,
		email:      emailSender,
		bcryptCost: bcryptCost,
		logger:     logger.With("component", "auth_usecase"),
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

// Signup hashes the password, applies profile defaults, and creates the
// user. The plaintext password never leaves this function and the returned
// user carries no hash. A welcome email is sent best-effort in the
// background; its failure never fails the signup.
func (u *AuthUsecase) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if err := passwordvalidator.Validate(input.Password, minPasswordEntropy); err != nil {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		About:        input.About,
		Avatar:       input.Avatar,
	}
	if user.Name == "" {
		user.Name = domain.DefaultName
	}
	if user.About == "" {
		user.About = domain.DefaultAbout
	}
	if user.Avatar == "" {
		user.Avatar = domain.DefaultAvatar
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	created.PasswordHash = ""

	metrics.SignupsTotal.Inc()

	go func() {
		body := fmt.Sprintf("<p>Welcome aboard, %s!</p>", created.Name)
		if err := u.email.Send(context.WithoutCancel(ctx), created.Email, "Welcome to Around", body); err != nil {
			u.logger.Error("send welcome email", "error", err)
		}
	}()

	return created, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password both return domain.ErrInvalidCredentials so the
// response never reveals whether the account exists.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginsTotal.Inc()
	return signed, nil
}
