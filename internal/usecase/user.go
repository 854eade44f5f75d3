package usecase

import (
	"context"
	"fmt"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/aroundhq/aroundb/internal/repository"
)

type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) List(ctx context.Context) ([]*domain.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) UpdateProfile(ctx context.Context, userID, name, about string) (*domain.User, error) {
	user, err := u.users.UpdateProfile(ctx, userID, name, about)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	user, err := u.users.UpdateAvatar(ctx, userID, avatar)
	if err != nil {
		return nil, err
	}
	return user, nil
}
