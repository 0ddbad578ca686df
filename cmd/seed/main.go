package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/user-registry/config"
	userapp "github.com/oksasatya/user-registry/internal/application"
	"github.com/oksasatya/user-registry/internal/container"
	pginfra "github.com/oksasatya/user-registry/internal/infrastructure/postgres"
	"github.com/oksasatya/user-registry/internal/router"
	"github.com/oksasatya/user-registry/pkg/helpers"
)

var samples = []userapp.CreateUserInput{
	{
		Name:  "Juan Pérez",
		Email: "juan.perez@example.com",
		Address: &userapp.AddressInput{
			Street: "Calle Mayor", Number: "10", Province: "Madrid", City: "Madrid",
		},
	},
	{
		Name:  "Ana María López",
		Email: "ana.lopez@example.com",
		Address: &userapp.AddressInput{
			Street: "Avinguda Diagonal", Number: "221B", Province: "Barcelona", City: "Sabadell",
		},
	},
	{
		Name:  "Lucía Fernández",
		Email: "lucia.fernandez@example.com",
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.MailSendEnabled = false
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetPGPool(pool)
	if cfg.ESEnabled {
		es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			log.Fatalf("failed to init elasticsearch client: %v", err)
		}
		container.SetES(es)
	}

	deps := router.BuildUserDeps()
	for _, in := range samples {
		res, err := deps.Create.Execute(ctx, &in)
		switch {
		case userapp.KindOf(err) == userapp.KindAlreadyExists:
			fmt.Printf("skip: %s already seeded\n", in.Email)
		case err != nil:
			log.Fatalf("failed to seed %s: %v", in.Email, err)
		default:
			fmt.Printf("seeded user: name=%s email=%s address=%t\n", res.Name, res.Email, res.Address != nil)
		}
	}

	jwt := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.AccessTTL, cfg.AppName)
	token, exp, err := jwt.GenerateAccessToken("seed", "users:write")
	if err != nil {
		log.Fatalf("failed to mint token: %v", err)
	}
	fmt.Printf("dev bearer token (expires %s):\n%s\n", exp.Format("2006-01-02 15:04:05Z07:00"), token)
}
