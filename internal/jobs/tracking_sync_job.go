package jobs

import (
	"context"
	"errors"
	"log/slog"

	"droneflow/internal/core/application/workflow"

	"github.com/robfig/cron/v3"
)

// DefaultTrackingSyncSpec runs the sync every second.
const DefaultTrackingSyncSpec = "* * * * * *"

// Dispatcher is the part of workflow.Controller the jobs drive.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent workflow.Intent) (workflow.Snapshot, error)
}

// TrackingSyncJob advances the delivery tracker with the passage of time.
type TrackingSyncJob struct {
	dispatcher Dispatcher
	spec       string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTrackingSyncJob creates the job; spec is a six field cron expression and
// falls back to DefaultTrackingSyncSpec when empty.
func NewTrackingSyncJob(dispatcher Dispatcher, spec string, logger *slog.Logger) *TrackingSyncJob {
	if spec == "" {
		spec = DefaultTrackingSyncSpec
	}
	return &TrackingSyncJob{
		dispatcher: dispatcher,
		spec:       spec,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tracking_sync_job"),
	}
}

// Run dispatches one sync. It is what every cron tick calls.
func (j *TrackingSyncJob) Run(ctx context.Context) {
	_, err := j.dispatcher.Dispatch(ctx, workflow.NewSyncTrackingIntent())
	// A closed workflow means shutdown is in progress
	if err != nil && !errors.Is(err, workflow.ErrWorkflowClosed) {
		j.logger.ErrorContext(ctx, "Tracking sync job failed", "error", err)
	}
}

// Start schedules the job.
func (j *TrackingSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking sync job started", "spec", j.spec)
	return nil
}

// Stop stops the job and waits for a running tick to finish.
func (j *TrackingSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tracking sync job stopped")
}
