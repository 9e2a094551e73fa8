package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Repository is the tenant-scoped persistence layer over PostgreSQL with a
// Redis cache for tenant configuration. Every query is keyed by tenant so
// cross-tenant mutation is impossible by construction.
type Repository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func New(db *pgxpool.Pool, redisClient *redis.Client) *Repository {
	return &Repository{
		db:          db,
		redisClient: redisClient,
	}
}
