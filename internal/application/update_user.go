package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-registry/internal/domain/entity"
	repo "github.com/oksasatya/user-registry/internal/domain/repository"
)

type UpdateUserUseCase struct {
	Users     repo.UserRepository
	Addresses repo.AddressRepository
	Cache     ViewCache
	Logger    *logrus.Logger
	Now       func() time.Time
}

func NewUpdateUserUseCase(users repo.UserRepository, addresses repo.AddressRepository, cache ViewCache, logger *logrus.Logger) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		Users:     users,
		Addresses: addresses,
		Cache:     cache,
		Logger:    orDiscard(logger),
		Now:       nowUTC,
	}
}

// Execute replaces name, email and address of user id. A nil input address
// detaches and deletes the current one. Validation of every field happens
// before the first write.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, id int64, in *UpdateUserInput) (*UserResponse, error) {
	if in == nil {
		return nil, InvalidInput("update user request is required")
	}
	log := uc.Logger.WithField("user_id", id)

	u, err := uc.Users.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("get user failed")
		return nil, err
	}
	if u == nil {
		return nil, NotFound(id)
	}

	if !strings.EqualFold(in.Email, u.Email()) {
		other, err := uc.Users.GetByEmail(ctx, in.Email)
		if err != nil {
			log.WithError(err).Error("lookup user by email failed")
			return nil, err
		}
		if other != nil && other.ID() != u.ID() {
			return nil, AlreadyExists(in.Email)
		}
	}

	if err := u.UpdateName(in.Name); err != nil {
		return nil, err
	}
	if err := u.UpdateEmail(in.Email); err != nil {
		return nil, err
	}

	var (
		orphan  *entity.Address
		created *entity.Address
	)
	current := u.Address()
	switch {
	case in.Address == nil && current != nil:
		orphan = current
		u.RemoveAddress()
	case in.Address != nil && current == nil:
		a := in.Address
		created, err = entity.NewAddress(u.ID(), a.Street, a.Number, a.Province, a.City, uc.Now())
		if err != nil {
			return nil, err
		}
	case in.Address != nil && current != nil:
		if err := applyAddress(current, in.Address); err != nil {
			return nil, err
		}
	}

	// from here on storage may change, so drop the cached view on every exit
	defer invalidateView(ctx, uc.Cache, uc.Logger, id)

	if orphan != nil {
		if err := uc.Addresses.Delete(ctx, orphan.ID()); err != nil {
			log.WithError(err).Error("delete detached address failed")
			return nil, err
		}
	}
	if created != nil {
		saved, err := uc.Addresses.Add(ctx, created)
		if err != nil {
			log.WithError(err).Error("insert address failed")
			return nil, err
		}
		u.UpdateAddress(saved)
	}

	if err := uc.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, AlreadyExists(in.Email)
		}
		log.WithError(err).Error("update user failed")
		return nil, err
	}

	log.Info("user updated")
	return ToUserResponse(u), nil
}

// applyAddress validates every field on a copy first so the live address is
// left untouched when any value is rejected.
func applyAddress(dst *entity.Address, in *AddressInput) error {
	trial := entity.ReconstituteAddress(dst.ID(), dst.UserID(), dst.Street(), dst.Number(), dst.Province(), dst.City(), dst.CreationDate())
	if err := setAddressFields(trial, in); err != nil {
		return err
	}
	return setAddressFields(dst, in)
}

func setAddressFields(a *entity.Address, in *AddressInput) error {
	if err := a.UpdateStreet(in.Street); err != nil {
		return err
	}
	if err := a.UpdateNumber(in.Number); err != nil {
		return err
	}
	if err := a.UpdateProvince(in.Province); err != nil {
		return err
	}
	return a.UpdateCity(in.City)
}
