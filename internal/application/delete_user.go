package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/user-registry/internal/domain/repository"
)

type DeleteUserUseCase struct {
	Users  repo.UserRepository
	Cache  ViewCache
	Logger *logrus.Logger
}

func NewDeleteUserUseCase(users repo.UserRepository, cache ViewCache, logger *logrus.Logger) *DeleteUserUseCase {
	return &DeleteUserUseCase{Users: users, Cache: cache, Logger: orDiscard(logger)}
}

// Execute removes the user; storage removes the owned address with it.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id int64) error {
	u, err := uc.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return NotFound(id)
	}
	if err := uc.Users.Delete(ctx, id); err != nil {
		uc.Logger.WithError(err).WithField("user_id", id).Error("delete user failed")
		return err
	}
	invalidateView(ctx, uc.Cache, uc.Logger, id)
	uc.Logger.WithField("user_id", id).Info("user deleted")
	return nil
}
