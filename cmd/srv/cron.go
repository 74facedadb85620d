package main

import (
	"github.com/loyalx/backend/internal/domain/cron"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadEndpoint()
	s.loadRepos()
	s.loadDomains()

	s.cronManager = cron.NewCronJobManager()
	s.cronManager.Register(cron.NewDrawRafflesCronJob(
		s.raffleDomain, s.raffleRepo, s.configs.Cron.DrawInterval))

	s.cronManager.Start(s.ctx)
	return nil
}
