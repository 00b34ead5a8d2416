package main

import (
	"fmt"
	"log"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/infrastructure"
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/jobs"
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/scheduler"
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/webserver"
)

func run(cfg Config) {
	db := infrastructure.Connect(cfg.DbPath)

	var sender jobs.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	runner := jobs.NewRunner(db, sender, cfg.JobsSecret, fmt.Sprintf("https://%s", cfg.FQDN))

	if cfg.CronEnabled {
		sched, err := scheduler.New(runner, cfg.JobsSecret, []scheduler.Entry{
			{Spec: cfg.RollCallSpec, JobType: jobs.RollCallEmails},
			{Spec: cfg.ReminderSpec, JobType: jobs.ReminderEmails},
			{Spec: cfg.DigestSpec, JobType: jobs.DailyDigestEmails},
			{Spec: cfg.ProjectDigestSpec, JobType: jobs.SeniorProjectDigest},
			{Spec: cfg.RollForwardSpec, JobType: jobs.RollForward},
		})
		if err != nil {
			log.Fatal(err)
		}
		sched.Start()
		defer sched.Stop()
	}

	app := webserver.New(webserver.Config{Version: version}, runner)
	fmt.Printf("Volunteer Hub notification engine %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
