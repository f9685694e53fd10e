// Package bootstrap wires the store, Redis and seed data for the binaries.
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"socialmanager/internal/cache"
	"socialmanager/internal/config"
	"socialmanager/internal/database"
	"socialmanager/internal/models"
	"socialmanager/internal/observability"
	"socialmanager/internal/repository"
	"socialmanager/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedSamples loads seed.Samples into an empty store.
	SeedSamples bool
	// SeedFile, when set, is imported into an empty store instead of the samples.
	SeedFile string
}

// OptionsFromConfig reads the seeding options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{SeedSamples: cfg.SeedSamples, SeedFile: cfg.SeedFile}
}

// Runtime is the set of connections the server runs on. DB is nil for the
// memory store and Redis is nil when caching is disabled or unreachable.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client
	Posts repository.PostRepository
}

// InitRuntime opens the configured store, connects Redis and seeds an empty
// store.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	rt := &Runtime{}

	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		rt.Posts = repository.NewMemoryPostRepository()
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		rt.DB = db
		rt.Posts = repository.NewGormPostRepository(db)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	rt.Redis = cache.GetClient()
	// Listings cached by an earlier process may no longer match the store.
	cache.InvalidatePostsList(ctx, listNamespace(rt.Posts))

	if err := SeedIfEmpty(ctx, rt.Posts, rt.DB, opts); err != nil {
		return nil, err
	}
	recordStored(ctx, rt.Posts)
	return rt, nil
}

// SeedIfEmpty applies the seed selected by opts when the store has no posts.
func SeedIfEmpty(ctx context.Context, repo repository.PostRepository, db *gorm.DB, opts Options) error {
	posts, err := seedPosts(opts)
	if err != nil || len(posts) == 0 {
		return err
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count posts before seeding: %w", err)
	}
	if n > 0 {
		log.Printf("Store already holds %d posts; skipping seed", n)
		return nil
	}

	applied, err := seed.Apply(ctx, repo, posts)
	if err != nil {
		return err
	}
	if err := database.SyncPostSequence(db); err != nil {
		return err
	}
	cache.InvalidatePostsList(ctx, listNamespace(repo))
	recordStored(ctx, repo)
	log.Printf("Seeded %d posts into the %s store", applied, repo.Backend())
	return nil
}

func listNamespace(repo repository.PostRepository) string {
	return cache.PostsListNamespace(repo.Backend(), repo.Instance())
}

// recordStored publishes the store size so the gauge is right before the
// first mutation.
func recordStored(ctx context.Context, repo repository.PostRepository) {
	if n, err := repo.Count(ctx); err == nil {
		observability.PostsStored.Set(float64(n))
	}
}

func seedPosts(opts Options) ([]*models.Post, error) {
	if opts.SeedFile != "" {
		posts, err := seed.LoadFile(opts.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		return posts, nil
	}
	if opts.SeedSamples {
		return seed.Samples(), nil
	}
	return nil, nil
}

// Close releases the runtime's connections.
func (rt *Runtime) Close() error {
	if rt.Redis != nil {
		if err := rt.Redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}
	return database.Close(rt.DB)
}
