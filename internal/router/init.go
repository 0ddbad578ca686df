package router

import (
	"context"

	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/user-registry/internal/application"
	"github.com/oksasatya/user-registry/internal/container"
	repouser "github.com/oksasatya/user-registry/internal/domain/repository"
	"github.com/oksasatya/user-registry/internal/domain/service"
	esinfra "github.com/oksasatya/user-registry/internal/infrastructure/elasticsearch"
	pginfra "github.com/oksasatya/user-registry/internal/infrastructure/postgres"
	redisinfra "github.com/oksasatya/user-registry/internal/infrastructure/redis"
	handlers "github.com/oksasatya/user-registry/internal/interface/http"
	"github.com/oksasatya/user-registry/internal/router/modules"
	"github.com/oksasatya/user-registry/pkg/helpers"
	"github.com/oksasatya/user-registry/pkg/mailer"
	"github.com/oksasatya/user-registry/pkg/mailer/templates"
)

type UserModuleDeps struct {
	Users     repouser.UserRepository
	Addresses repouser.AddressRepository

	Create *userapp.CreateUserUseCase
	Get    *userapp.GetUserByIdUseCase
	Update *userapp.UpdateUserUseCase
	Delete *userapp.DeleteUserUseCase
	Search *userapp.SearchUsersUseCase
}

// BuildUserDeps wires repositories, optional decorators and use cases from the container.
func BuildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	var (
		users     repouser.UserRepository    = pginfra.NewUserRepository(pool)
		addresses repouser.AddressRepository = pginfra.NewAddressRepository(pool)
	)
	if es := container.GetES(); es != nil {
		idx := esinfra.NewIndexer(es, cfg.ESUsersIndex, logger)
		addresses = esinfra.NewAddressRepository(addresses, users, idx, logger)
		users = esinfra.NewUserRepository(users, idx, cfg.SearchFromIndex(), logger)
	}

	var cache userapp.ViewCache
	if rdb := container.GetRedis(); rdb != nil && cfg.UserCacheTTL > 0 {
		cache = redisinfra.NewUserViewCache(rdb, cfg.UserCacheTTL)
	}

	var email service.EmailService
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		email = mailer.NewQueueEmailService(pub, templates.Company{
			Name:       cfg.CompanyName,
			AppName:    cfg.AppName,
			SupportURL: cfg.SupportURL,
		})
	}

	return UserModuleDeps{
		Users:     users,
		Addresses: addresses,
		Create:    userapp.NewCreateUserUseCase(users, addresses, email, logger),
		Get:       userapp.NewGetUserByIdUseCase(users, cache, logger),
		Update:    userapp.NewUpdateUserUseCase(users, addresses, cache, logger),
		Delete:    userapp.NewDeleteUserUseCase(users, cache, logger),
		Search:    userapp.NewSearchUsersUseCase(users, logger),
	}
}

func healthChecks() map[string]handlers.Pinger {
	checks := map[string]handlers.Pinger{}
	if pool := container.GetPGPool(); pool != nil {
		checks["postgres"] = pool.Ping
	}
	if rdb := container.GetRedis(); rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	if pub := container.GetRabbitPub(); pub != nil {
		checks["rabbitmq"] = pub.Ping
	}
	if es := container.GetES(); es != nil {
		checks["elasticsearch"] = func(ctx context.Context) error { return helpers.ESPing(ctx, es) }
	}
	return checks
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	deps := BuildUserDeps()

	handler := handlers.NewUserHandler(deps.Create, deps.Get, deps.Update, deps.Delete, deps.Search, container.GetLogger())
	jwt := container.GetJWT()
	if !cfg.AuthEnabled {
		jwt = nil
	}

	r.AddOps(modules.NewHealthModule(handlers.NewHealthHandler(healthChecks())))
	r.Add(modules.NewUserModule(handler, jwt, cfg.RateLimitPerMin))
	if cfg.DebugMetricsEnabled {
		r.AddOps(modules.NewDebugModule())
	}
	container.GetLogger().WithFields(logrus.Fields{
		"auth":           cfg.AuthEnabled,
		"search_backend": cfg.SearchBackend,
		"es":             container.GetES() != nil,
	}).Info("modules registered")
}
