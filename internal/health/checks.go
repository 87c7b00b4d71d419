package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/visualapp/storefront-api/internal/config"
	"github.com/visualapp/storefront-api/pkg/anthropic"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/redis/go-redis/v9"
)

type Endpoints struct {
	DB           *sql.DB
	RedisClient  *redis.Client
	OracleClient *anthropic.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "storefront-api",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "oracle",
				Timeout:   2 * time.Second,
				// Recommendations degrade, the storefront stays up.
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					if endpoints.OracleClient == nil {
						return fmt.Errorf("scoring client is not initialized")
					}
					if cfg.Oracle.APIKey == "" {
						return fmt.Errorf("scoring API key is not configured")
					}
					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
