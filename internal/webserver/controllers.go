package webserver

import (
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/jobs"
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/webserver/controller/job"
)

type Controllers struct {
	Jobs *job.Controller
}

func SetupControllers(runner *jobs.Runner) Controllers {
	return Controllers{
		Jobs: job.NewController(runner),
	}
}
