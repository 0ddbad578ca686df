package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/oksasatya/user-registry/config"
	esinfra "github.com/oksasatya/user-registry/internal/infrastructure/elasticsearch"
	pginfra "github.com/oksasatya/user-registry/internal/infrastructure/postgres"
	"github.com/oksasatya/user-registry/pkg/helpers"
)

const workers = 8

// reindex rebuilds the Elasticsearch users index from PostgreSQL and removes
// documents of users that no longer exist.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-reindex", cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), workers, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}
	idx := esinfra.NewIndexer(es, cfg.ESUsersIndex, logger)
	if err := idx.EnsureIndex(ctx); err != nil {
		log.Fatalf("ensure index: %v", err)
	}

	// snapshot the index before listing storage so users created meanwhile are not pruned
	indexedIDs, err := idx.IndexedIDs(ctx)
	if err != nil {
		log.Fatalf("list indexed users: %v", err)
	}
	users := pginfra.NewUserRepository(pool)
	ids, err := users.ListUserIDs(ctx)
	if err != nil {
		log.Fatalf("list users: %v", err)
	}
	stale := esinfra.StaleIDs(indexedIDs, ids)

	var indexed, pruned atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range stale {
		id := id
		g.Go(func() error {
			if err := idx.Delete(gctx, id); err != nil {
				return err
			}
			pruned.Add(1)
			return nil
		})
	}
	for _, id := range ids {
		id := id
		g.Go(func() error {
			u, err := users.GetByID(gctx, id)
			if err != nil || u == nil {
				return err
			}
			if err := idx.Index(gctx, u); err != nil {
				return err
			}
			indexed.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("reindex failed after %d users, %d pruned: %v", indexed.Load(), pruned.Load(), err)
	}
	logger.WithFields(logrus.Fields{
		"users":  indexed.Load(),
		"pruned": pruned.Load(),
		"index":  cfg.ESUsersIndex,
	}).Info("reindex complete")
}
