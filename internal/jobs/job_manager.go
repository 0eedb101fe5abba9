package jobs

import (
	"fmt"
)

// Job is a background worker with an explicit lifecycle.
// Both scheduled jobs and message consumers satisfy it.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all background workers in the application.
// Provides a unified interface to start and stop all of them.
type JobManager struct {
	jobs []Job
}

// NewJobManager creates a job manager over the given workers.
// Workers are started in registration order and stopped in reverse.
func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts all registered workers.
// Returns an error if any worker fails to start.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for j := i - 1; j >= 0; j-- {
				jm.jobs[j].Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}

	return nil
}

// StopAll stops all registered workers gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
