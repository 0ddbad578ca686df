package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/user-registry/internal/domain/entity"
	"github.com/oksasatya/user-registry/internal/domain/repository"
)

var ErrAddressExists = errors.New("user already has an address")

const selectAddress = `SELECT id, user_id, street, number, province, city, creation_date FROM addresses `

type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*entity.Address, error) {
	return r.getOne(ctx, selectAddress+`WHERE id = $1`, id)
}

func (r *AddressRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Address, error) {
	return r.getOne(ctx, selectAddress+`WHERE user_id = $1`, userID)
}

func (r *AddressRepository) getOne(ctx context.Context, query string, arg int64) (*entity.Address, error) {
	a, err := scanAddress(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}
	return a, nil
}

func (r *AddressRepository) Add(ctx context.Context, a *entity.Address) (*entity.Address, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO addresses (user_id, street, number, province, city, creation_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, a.UserID(), a.Street(), a.Number(), a.Province(), a.City(), a.CreationDate()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAddressExists
		}
		return nil, fmt.Errorf("insert address: %w", err)
	}
	return a.WithID(id), nil
}

func (r *AddressRepository) Update(ctx context.Context, a *entity.Address) error {
	return updateAddress(ctx, r.pool, a)
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func updateAddress(ctx context.Context, db execer, a *entity.Address) error {
	_, err := db.Exec(ctx, `
		UPDATE addresses
		SET street = $1, number = $2, province = $3, city = $4
		WHERE id = $5
	`, a.Street(), a.Number(), a.Province(), a.City(), a.ID())
	if err != nil {
		return fmt.Errorf("update address %d: %w", a.ID(), err)
	}
	return nil
}

func scanAddress(row pgx.Row) (*entity.Address, error) {
	var (
		id, userID                     int64
		street, number, province, city string
		created                        time.Time
	)
	if err := row.Scan(&id, &userID, &street, &number, &province, &city, &created); err != nil {
		return nil, err
	}
	return entity.ReconstituteAddress(id, userID, street, number, province, city, created), nil
}

var _ repository.AddressRepository = (*AddressRepository)(nil)
