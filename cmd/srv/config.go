package main

import (
	"context"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/loyalx/backend/config"
	"github.com/loyalx/backend/pkg/xcontext"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func (s *srv) loadConfig() {
	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "loyalx"),
			User:     getEnv("MYSQL_USER", "loyalx"),
			Password: getEnv("MYSQL_PASSWORD", "loyalx"),
		},
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8080"),
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     getEnv("TOKEN_SECRET", "token-secret"),
				Expiration: 24 * time.Hour,
			},
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Points: config.PointsConfigs{
			BaseURL: getEnv("POINTS_BASE_URL", "http://localhost:8100"),
			Timeout: 5 * time.Second,
		},
		Statistic: config.StatisticConfigs{
			CacheTTL: time.Minute,
		},
		Cron: config.CronConfigs{
			DrawInterval: time.Minute,
		},
	}

	// A config file overrides the environment defaults.
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			panic(err)
		}
	}

	s.configs = &cfg
	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
}
