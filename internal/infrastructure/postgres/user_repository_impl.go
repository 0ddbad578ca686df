package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/user-registry/internal/domain/entity"
	"github.com/oksasatya/user-registry/internal/domain/repository"
)

const selectUser = `
	SELECT u.id, u.name, u.email, u.creation_date,
	       a.id, a.street, a.number, a.province, a.city, a.creation_date
	FROM users u
	LEFT JOIN addresses a ON a.user_id = u.id
`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, selectUser+`WHERE u.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// GetByEmail matches case-insensitively, mirroring the users_email_lower_key index.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, selectUser+`WHERE lower(u.email) = lower($1)`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) (*entity.User, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, creation_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Name(), u.Email(), u.CreationDate()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u.WithID(id), nil
}

// Update writes the user row and, when one is attached, its address row in a single transaction.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `UPDATE users SET name = $1, email = $2 WHERE id = $3`, u.Name(), u.Email(), u.ID()); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("update user %d: %w", u.ID(), err)
	}
	if a := u.Address(); a != nil && a.ID() > 0 {
		if err := updateAddress(ctx, tx, a); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Delete removes the user; the addresses foreign key cascades.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (r *UserRepository) Search(ctx context.Context, c repository.SearchCriteria) ([]*entity.User, error) {
	where, args := searchFilter(c)
	rows, err := r.pool.Query(ctx, selectUser+where+` ORDER BY u.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// ListUserIDs returns every user id in ascending order.
func (r *UserRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id             int64
		name, email    string
		created        time.Time
		addrID         *int64
		street, number *string
		province, city *string
		addrCreated    *time.Time
	)
	if err := row.Scan(&id, &name, &email, &created, &addrID, &street, &number, &province, &city, &addrCreated); err != nil {
		return nil, err
	}
	var addr *entity.Address
	if addrID != nil {
		addr = entity.ReconstituteAddress(*addrID, id, *street, *number, *province, *city, *addrCreated)
	}
	return entity.ReconstituteUser(id, name, email, created, addr), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
