package job

import (
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/jobs"
)

type runner interface {
	Run(now time.Time, jobType, token string) jobs.Result
}

type Controller struct {
	runner runner
}

func NewController(runner runner) *Controller {
	return &Controller{
		runner: runner,
	}
}
