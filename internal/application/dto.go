package application

import (
	"context"

	"github.com/oksasatya/user-registry/internal/domain/entity"
)

type AddressInput struct {
	Street   string
	Number   string
	Province string
	City     string
}

type CreateUserInput struct {
	Name    string
	Email   string
	Address *AddressInput
}

// UpdateUserInput replaces name and email; a nil Address removes any existing one.
type UpdateUserInput struct {
	Name    string
	Email   string
	Address *AddressInput
}

type SearchUsersInput struct {
	Name     *string
	Province *string
	City     *string
}

// UserResponse is the public view of a user. Identities and timestamps are never exposed.
type UserResponse struct {
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Address *AddressResponse `json:"address"`
}

type AddressResponse struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	Province string `json:"province"`
	City     string `json:"city"`
}

func ToUserResponse(u *entity.User) *UserResponse {
	res := &UserResponse{Name: u.Name(), Email: u.Email()}
	if a := u.Address(); a != nil {
		res.Address = &AddressResponse{
			Street:   a.Street(),
			Number:   a.Number(),
			Province: a.Province(),
			City:     a.City(),
		}
	}
	return res
}

// ViewCache stores rendered user views keyed by id. Implementations are best effort.
type ViewCache interface {
	Get(ctx context.Context, id int64) (*UserResponse, bool, error)
	Set(ctx context.Context, id int64, view *UserResponse) error
	Invalidate(ctx context.Context, id int64) error
}
