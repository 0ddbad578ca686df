package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-registry/internal/domain/entity"
	repo "github.com/oksasatya/user-registry/internal/domain/repository"
	"github.com/oksasatya/user-registry/internal/domain/service"
)

type CreateUserUseCase struct {
	Users     repo.UserRepository
	Addresses repo.AddressRepository
	Email     service.EmailService
	Logger    *logrus.Logger
	Now       func() time.Time
}

// NewCreateUserUseCase wires the create flow. email may be nil when outbound mail is disabled.
func NewCreateUserUseCase(users repo.UserRepository, addresses repo.AddressRepository, email service.EmailService, logger *logrus.Logger) *CreateUserUseCase {
	return &CreateUserUseCase{
		Users:     users,
		Addresses: addresses,
		Email:     email,
		Logger:    orDiscard(logger),
		Now:       nowUTC,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, in *CreateUserInput) (*UserResponse, error) {
	if in == nil {
		return nil, InvalidInput("create user request is required")
	}

	existing, err := uc.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.Logger.WithError(err).Error("lookup user by email failed")
		return nil, err
	}
	if existing != nil {
		uc.Logger.WithField("user_id", existing.ID()).Debug("create rejected, email taken")
		return nil, AlreadyExists(in.Email)
	}

	now := uc.Now()
	u, err := entity.NewUser(in.Name, in.Email, now)
	if err != nil {
		return nil, err
	}

	saved, err := uc.Users.Add(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, AlreadyExists(in.Email)
		}
		uc.Logger.WithError(err).Error("insert user failed")
		return nil, err
	}
	log := uc.Logger.WithField("user_id", saved.ID())

	if in.Address != nil {
		a := in.Address
		addr, err := entity.NewAddress(saved.ID(), a.Street, a.Number, a.Province, a.City, now)
		if err != nil {
			return nil, err
		}
		savedAddr, err := uc.Addresses.Add(ctx, addr)
		if err != nil {
			log.WithError(err).Error("insert address failed")
			return nil, err
		}
		saved.AssignAddress(savedAddr)
	}

	if uc.Email != nil {
		if err := uc.Email.SendWelcomeEmail(ctx, saved.Email(), saved.Name()); err != nil {
			log.WithError(err).Warn("welcome email failed")
			return nil, err
		}
	}

	log.WithField("has_address", saved.HasAddress()).Info("user created")
	return ToUserResponse(saved), nil
}
