package main

import (
	"net/http"

	"github.com/loyalx/backend/internal/middleware"
	"github.com/loyalx/backend/pkg/router"
	"github.com/rs/cors"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadEndpoint()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: cors.AllowAll().Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Public API
	router.GET(s.router, "/raffles", s.raffleDomain.GetList)
	router.GET(s.router, "/raffles/:id", s.raffleDomain.Get)
	router.GET(s.router, "/raffles/user/:wallet", s.raffleDomain.GetByUser)
	router.GET(s.router, "/leaderboard", s.statisticDomain.GetLeaderboard)
	router.GET(s.router, "/members", s.statisticDomain.GetMembers)
	router.GET(s.router, "/stats", s.statisticDomain.GetStats)

	// These following APIs need authentication with only Access Token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate)
	{
		router.POST(authRouter, "/raffles", s.raffleDomain.Create)
		router.POST(authRouter, "/raffles/:id/claim", s.raffleDomain.Claim)
		router.POST(authRouter, "/programs", s.programDomain.Create)
		router.POST(authRouter, "/passes", s.programDomain.CreatePass)
	}
}
