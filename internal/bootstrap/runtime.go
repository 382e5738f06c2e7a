// Package bootstrap connects the runtime dependencies shared by the server
// and the command line tools.
package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"

	"devconnector/internal/cache"
	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/middleware"
	"devconnector/internal/models"
	"devconnector/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemo fills an empty development database with demo users and posts.
	SeedDemo  bool
	DemoUsers int
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
// The Redis client is nil when Redis is unreachable.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	r := cache.InitRedis(cfg.RedisURL)

	if err := ensureDemoData(cfg, db, opts); err != nil {
		return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	return db, r, nil
}

func ensureDemoData(cfg *config.Config, db *gorm.DB, opts Options) error {
	if !opts.SeedDemo || !strings.EqualFold(cfg.Env, "development") {
		return nil
	}

	var users int64
	if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
		return err
	}
	if users > 0 {
		return nil
	}

	n := opts.DemoUsers
	if n <= 0 {
		n = 10
	}
	sum, err := seed.Seed(db, seed.Options{
		NumUsers:     n,
		PostsPerUser: 2,
		MaxLikes:     5,
		MaxComments:  3,
		BcryptCost:   cfg.BcryptCost,
	})
	if err != nil {
		return err
	}
	middleware.Logger.Info("development demo data seeded",
		slog.Int("users", sum.Users),
		slog.String("password", seed.DemoPassword))
	return nil
}
