package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultAutosaveSchedule re-saves state every thirty seconds.
const DefaultAutosaveSchedule = "*/30 * * * * *"

// Saver writes every persisted structure. A failed structure does not stop
// the others from being written.
type Saver interface {
	SaveAll(ctx context.Context) error
}

// AutosaveJob periodically re-saves the whole application state, retrying
// writes that failed when the change happened.
type AutosaveJob struct {
	saver    Saver
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutosaveJob creates the job. The schedule is a six-field cron expression
// with seconds; an empty schedule falls back to DefaultAutosaveSchedule.
func NewAutosaveJob(saver Saver, schedule string, logger *slog.Logger) *AutosaveJob {
	if schedule == "" {
		schedule = DefaultAutosaveSchedule
	}
	return &AutosaveJob{
		saver:    saver,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "autosave_job"),
	}
}

func (j *AutosaveJob) Name() string { return "autosave" }

// Start registers the schedule and starts the cron runner.
func (j *AutosaveJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Autosave job started", "schedule", j.schedule)
	return nil
}

func (j *AutosaveJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.saver.SaveAll(ctx); err != nil {
		j.logger.WarnContext(ctx, "Autosave failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Autosave completed")
}

// Stop stops the schedule and waits for a running save to finish.
func (j *AutosaveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Autosave job stopped")
}
