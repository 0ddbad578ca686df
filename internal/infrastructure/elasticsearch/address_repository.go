package elasticsearch

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-registry/internal/domain/entity"
	"github.com/oksasatya/user-registry/internal/domain/repository"
)

// AddressRepository reindexes the owning user after every address write.
// users must be the undecorated store so the owner is read from storage.
type AddressRepository struct {
	next   repository.AddressRepository
	users  repository.UserRepository
	idx    documentIndex
	logger *logrus.Logger
}

func NewAddressRepository(next repository.AddressRepository, users repository.UserRepository, idx documentIndex, logger *logrus.Logger) *AddressRepository {
	return &AddressRepository{next: next, users: users, idx: idx, logger: logger}
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*entity.Address, error) {
	return r.next.GetByID(ctx, id)
}

func (r *AddressRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Address, error) {
	return r.next.GetByUserID(ctx, userID)
}

func (r *AddressRepository) Add(ctx context.Context, a *entity.Address) (*entity.Address, error) {
	saved, err := r.next.Add(ctx, a)
	if err != nil {
		return nil, err
	}
	r.reindexOwner(ctx, saved.UserID())
	return saved, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *entity.Address) error {
	if err := r.next.Update(ctx, a); err != nil {
		return err
	}
	r.reindexOwner(ctx, a.UserID())
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	a, err := r.next.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	if a != nil {
		r.reindexOwner(ctx, a.UserID())
	}
	return nil
}

func (r *AddressRepository) reindexOwner(ctx context.Context, userID int64) {
	log := r.logger.WithField("user_id", userID)
	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("es reindex owner lookup failed")
		return
	}
	if u == nil {
		return
	}
	if err := r.idx.Index(ctx, u); err != nil {
		log.WithError(err).Warn("es index failed")
	}
}

var _ repository.AddressRepository = (*AddressRepository)(nil)
