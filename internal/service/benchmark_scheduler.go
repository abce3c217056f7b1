package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// importTimeout bounds a single scheduled benchmark import.
const importTimeout = 2 * time.Minute

// BenchmarkScheduler re-imports the benchmark file on a cron schedule so edits to
// the file reach running servers without a restart.
type BenchmarkScheduler struct {
	cron     *cron.Cron
	service  *BenchmarkService
	path     string
	schedule string
}

// NewBenchmarkScheduler creates a scheduler for the given file and cron spec
// (standard five-field syntax or descriptors such as "@hourly").
func NewBenchmarkScheduler(service *BenchmarkService, path, schedule string) *BenchmarkScheduler {
	return &BenchmarkScheduler{
		cron:     cron.New(),
		service:  service,
		path:     path,
		schedule: schedule,
	}
}

// Start registers the import job and starts the scheduler.
func (s *BenchmarkScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.RunOnce); err != nil {
		return fmt.Errorf("invalid benchmark refresh schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	log.Printf("Benchmark refresh scheduled (%s) from %s", s.schedule, s.path)
	return nil
}

// RunOnce imports the benchmark file immediately. Failures are logged; the
// previously stored benchmarks stay in effect.
func (s *BenchmarkScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	n, err := s.service.ImportFile(ctx, s.path)
	if err != nil {
		log.Printf("Benchmark import from %s failed: %v", s.path, err)
		return
	}
	log.Printf("Imported %d benchmarks from %s", n, s.path)
}

// Stop stops the scheduler and returns a context that is done when any running
// import has finished.
func (s *BenchmarkScheduler) Stop() context.Context {
	return s.cron.Stop()
}
