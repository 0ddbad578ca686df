package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/user-registry/internal/domain/repository"
)

type SearchUsersUseCase struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewSearchUsersUseCase(users repo.UserRepository, logger *logrus.Logger) *SearchUsersUseCase {
	return &SearchUsersUseCase{Users: users, Logger: orDiscard(logger)}
}

// Execute matches users by substring on any supplied criterion. At least one
// criterion must carry a non-blank value.
func (uc *SearchUsersUseCase) Execute(ctx context.Context, in *SearchUsersInput) ([]*UserResponse, error) {
	if in == nil {
		return nil, InvalidInput("search request is required")
	}
	criteria := repo.SearchCriteria{Name: in.Name, Province: in.Province, City: in.City}
	if criteria.IsEmpty() {
		return nil, InvalidSearchCriteria()
	}

	users, err := uc.Users.Search(ctx, criteria)
	if err != nil {
		uc.Logger.WithError(err).Error("search users failed")
		return nil, err
	}
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	uc.Logger.WithField("count", len(out)).Debug("users searched")
	return out, nil
}
