package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/oksasatya/user-registry/internal/domain/entity"
)

// ErrDuplicateEmail is returned by storage when the unique email constraint rejects a write.
var ErrDuplicateEmail = errors.New("duplicate email")

// SearchCriteria holds optional substring filters. A nil or blank field is ignored.
type SearchCriteria struct {
	Name     *string
	Province *string
	City     *string
}

// IsEmpty reports whether no usable criterion is set.
func (c SearchCriteria) IsEmpty() bool {
	return blank(c.Name) && blank(c.Province) && blank(c.City)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// UserRepository defines the interface for user-related database operations.
// Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Add inserts the user and returns it with its assigned id.
	Add(ctx context.Context, u *entity.User) (*entity.User, error)
	// Update writes the user row and, when attached, its address row.
	Update(ctx context.Context, u *entity.User) error
	// Delete removes the user; the owned address is removed with it.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria SearchCriteria) ([]*entity.User, error)
}
