package main

import (
	"context"
	"net/http"

	"github.com/loyalx/backend/config"
	"github.com/loyalx/backend/internal/domain"
	"github.com/loyalx/backend/internal/domain/cron"
	"github.com/loyalx/backend/internal/domain/raffle"
	"github.com/loyalx/backend/internal/repository"
	"github.com/loyalx/backend/pkg/api/points"
	"github.com/loyalx/backend/pkg/logger"
	"github.com/loyalx/backend/pkg/router"
	"github.com/loyalx/backend/pkg/xcontext"
	"github.com/loyalx/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger

	db             *gorm.DB
	redisClient    xredis.Client
	pointsEndpoint points.IEndpoint

	raffleRepo  repository.RaffleRepository
	passRepo    repository.PassRepository
	programRepo repository.ProgramRepository

	raffleDomain    domain.RaffleDomain
	statisticDomain domain.StatisticDomain
	programDomain   domain.ProgramDomain

	router      *router.Router
	server      *http.Server
	cronManager *cron.CronJobManager
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                      s.configs.Database.ConnectionString(),
		DefaultStringSize:        256,
		DisableDatetimePrecision: true,
		DontSupportRenameIndex:   true,
		DontSupportRenameColumn:  true,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	if s.configs.Redis.Addr == "" {
		s.logger.Warnf("No redis address, statistic responses are not cached")
		return
	}

	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadEndpoint() {
	s.pointsEndpoint = points.New(s.configs.Points)
}

func (s *srv) loadRepos() {
	s.raffleRepo = repository.NewRaffleRepository()
	s.passRepo = repository.NewPassRepository()
	s.programRepo = repository.NewProgramRepository()
}

func (s *srv) loadDomains() {
	s.raffleDomain = domain.NewRaffleDomain(
		s.raffleRepo, s.passRepo, s.programRepo, raffle.NewDrawer(nil))
	s.statisticDomain = domain.NewStatisticDomain(
		s.programRepo, s.passRepo, s.pointsEndpoint, s.redisClient)
	s.programDomain = domain.NewProgramDomain(s.programRepo, s.passRepo)
}
