package elasticsearch

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-registry/internal/domain/entity"
	"github.com/oksasatya/user-registry/internal/domain/repository"
)

type documentIndex interface {
	Index(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria repository.SearchCriteria) ([]*entity.User, error)
}

// UserRepository keeps the users index in step with the wrapped repository.
// Index failures are logged and never fail the write; the reindex command
// repairs drift. When searchIndex is set, Search is answered by the index.
type UserRepository struct {
	next        repository.UserRepository
	idx         documentIndex
	searchIndex bool
	logger      *logrus.Logger
}

func NewUserRepository(next repository.UserRepository, idx documentIndex, searchIndex bool, logger *logrus.Logger) *UserRepository {
	return &UserRepository{next: next, idx: idx, searchIndex: searchIndex, logger: logger}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.next.GetByID(ctx, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.next.GetByEmail(ctx, email)
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) (*entity.User, error) {
	saved, err := r.next.Add(ctx, u)
	if err != nil {
		return nil, err
	}
	r.index(ctx, saved)
	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	if err := r.next.Update(ctx, u); err != nil {
		return err
	}
	r.index(ctx, u)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.idx.Delete(ctx, id); err != nil {
		r.logger.WithError(err).WithField("user_id", id).Warn("es delete failed")
	}
	return nil
}

func (r *UserRepository) Search(ctx context.Context, c repository.SearchCriteria) ([]*entity.User, error) {
	if r.searchIndex {
		return r.idx.Search(ctx, c)
	}
	return r.next.Search(ctx, c)
}

func (r *UserRepository) index(ctx context.Context, u *entity.User) {
	if err := r.idx.Index(ctx, u); err != nil {
		r.logger.WithError(err).WithField("user_id", u.ID()).Warn("es index failed")
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
