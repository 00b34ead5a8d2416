package scheduler

import (
	"log"
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/jobs"
	"github.com/robfig/cron/v3"
)

// Entry binds a cron spec to a job type.
type Entry struct {
	Spec    string
	JobType string
}

// Scheduler periodically feeds the job runner, for deployments without an
// external cron hitting the HTTP endpoint. It guarantees nothing beyond
// cadence: overlapping invocations of the same job must still be avoided by
// keeping specs far enough apart from each job's runtime.
type Scheduler struct {
	cron *cron.Cron
}

func New(runner *jobs.Runner, secret string, entries []Entry) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
	}
	for _, entry := range entries {
		entry := entry
		_, err := s.cron.AddFunc(entry.Spec, func() {
			result := runner.Run(time.Now().UTC(), entry.JobType, secret)
			if !result.Success {
				log.Printf("job %s failed: %s\n", entry.JobType, result.Error)
				return
			}
			log.Printf("job %s finished: %d sent, %d failed, %d updated\n",
				entry.JobType, result.EmailsSent, result.EmailsFailed, result.Updated)
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for any running job to finish before returning.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
