package testutil

import (
	"context"
	"time"

	"github.com/loyalx/backend/config"
	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/migration"
	"github.com/loyalx/backend/pkg/authenticator"
	"github.com/loyalx/backend/pkg/logger"
	"github.com/loyalx/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "testing",
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: time.Minute,
			},
		},
		Points: config.PointsConfigs{
			BaseURL: "http://localhost:8100",
			Timeout: time.Second,
		},
		Statistic: config.StatisticConfigs{
			CacheTTL: time.Minute,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
