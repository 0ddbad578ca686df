package repository

import (
	"context"

	"github.com/oksasatya/user-registry/internal/domain/entity"
)

// AddressRepository persists addresses independently of their owner.
type AddressRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Address, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Address, error)
	Add(ctx context.Context, a *entity.Address) (*entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, id int64) error
}
