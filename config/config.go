package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Redis     RedisConfigs
	Points    PointsConfigs
	Statistic StatisticConfigs
	Cron      CronConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Secret     string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr string
}

// PointsConfigs configures the client of the on-chain points-accounting
// protocol. Timeout bounds a single GetAssetData call, not a whole
// aggregation.
type PointsConfigs struct {
	BaseURL string
	Timeout time.Duration
}

type StatisticConfigs struct {
	CacheTTL time.Duration
}

type CronConfigs struct {
	DrawInterval time.Duration
}
