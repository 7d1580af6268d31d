package controllers

import (
	"context"
	"log/slog"
	"time"

	"github.com/adamanr/workforce_service/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
)

type Controllers struct {
	AuthController     *AuthController
	EmployeeController *EmployeeController
}

type Dependens struct {
	DB interface {
		Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
		Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	}
	Redis interface {
		Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
		Get(ctx context.Context, key string) *redis.StringCmd
		Del(ctx context.Context, keys ...string) *redis.IntCmd
	}
	Logger    *slog.Logger
	Config    *config.Config
	Metrics   *Metrics
	Sanitizer *bluemonday.Policy
	Now       func() time.Time
}

func NewControllers(deps *Dependens) *Controllers {
	if deps.Sanitizer == nil {
		deps.Sanitizer = bluemonday.StrictPolicy()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Controllers{
		AuthController:     NewAuthController(deps),
		EmployeeController: NewEmployeeController(deps),
	}
}
