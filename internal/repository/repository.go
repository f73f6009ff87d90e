package repository

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wok10-dev/shift-planner/backend/internal/config"
)

var ErrNotFound = errors.New("repository: not found")

// Repository holds the session state of the planning service in Redis: the
// current planning, the workbook backing it, uploaded files and the
// import/export history. There is a single session per key prefix.
type Repository struct {
	cfg *config.Config
	rdb *redis.Client
}

func NewRepository(cfg *config.Config, rdb *redis.Client) *Repository {
	return &Repository{
		cfg: cfg,
		rdb: rdb,
	}
}

func (r *Repository) key(name string) string {
	return r.cfg.Redis.KeyPrefix + ":" + name
}

func (r *Repository) operationTimeout() time.Duration {
	return time.Duration(r.cfg.Redis.OperationTimeout) * time.Second
}

func (r *Repository) sessionExpiration() time.Duration {
	return time.Duration(r.cfg.Redis.SessionExpiration) * time.Second
}

func notFound(err error) error {
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	return err
}
