package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Loyalx"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{},
			Category:    "Api",
			Description: `Used for start service api, the main service included all apis.`,
		},
		{
			Action:      server.startCron,
			Name:        "cron",
			Usage:       "Start cron jobs",
			Flags:       []cli.Flag{},
			Category:    "Worker",
			Description: `Used to start the worker that draws due raffles on a schedule.`,
		},
		{
			Action: server.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "The migration version to run",
					Value: "auto",
				},
			},
			Category:    "Database",
			Description: `Used to run a database migration version.`,
		},
	}

	s.app = app
}
