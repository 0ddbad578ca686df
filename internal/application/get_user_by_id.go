package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/user-registry/internal/domain/repository"
)

type GetUserByIdUseCase struct {
	Users  repo.UserRepository
	Cache  ViewCache
	Logger *logrus.Logger
}

func NewGetUserByIdUseCase(users repo.UserRepository, cache ViewCache, logger *logrus.Logger) *GetUserByIdUseCase {
	return &GetUserByIdUseCase{Users: users, Cache: cache, Logger: orDiscard(logger)}
}

// Execute returns the user view, served from the cache when one is wired and warm.
func (uc *GetUserByIdUseCase) Execute(ctx context.Context, id int64) (*UserResponse, error) {
	log := uc.Logger.WithField("user_id", id)
	if uc.Cache != nil {
		view, ok, err := uc.Cache.Get(ctx, id)
		switch {
		case err != nil:
			log.WithError(err).Warn("user view cache read failed")
		case ok:
			return view, nil
		}
	}

	u, err := uc.Users.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("get user failed")
		return nil, err
	}
	if u == nil {
		return nil, NotFound(id)
	}

	view := ToUserResponse(u)
	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, id, view); err != nil {
			log.WithError(err).Warn("user view cache write failed")
		}
	}
	return view, nil
}
