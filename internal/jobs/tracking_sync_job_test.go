package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"droneflow/internal/core/application/workflow"
	"droneflow/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, intent workflow.Intent) (workflow.Snapshot, error) {
	args := m.Called(ctx, intent)
	return workflow.Snapshot{}, args.Error(0)
}

func isSync(i workflow.Intent) bool {
	_, ok := i.(workflow.SyncTrackingIntent)
	return ok
}

func TestTrackingSyncJob_Run(t *testing.T) {
	t.Run("should dispatch a sync intent", func(t *testing.T) {
		d := &mockDispatcher{}
		d.On("Dispatch", mock.Anything, mock.MatchedBy(isSync)).Return(nil).Once()

		jobs.NewTrackingSyncJob(d, "", slog.Default()).Run(t.Context())

		d.AssertExpectations(t)
	})

	t.Run("should tolerate a closed workflow and other errors", func(t *testing.T) {
		d := &mockDispatcher{}
		d.On("Dispatch", mock.Anything, mock.Anything).Return(workflow.ErrWorkflowClosed).Once()
		d.On("Dispatch", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()
		job := jobs.NewTrackingSyncJob(d, "", slog.Default())

		assert.NotPanics(t, func() {
			job.Run(t.Context())
			job.Run(t.Context())
		})
		d.AssertNumberOfCalls(t, "Dispatch", 2)
	})
}

func TestTrackingSyncJob_Schedule(t *testing.T) {
	t.Run("should tick until stopped", func(t *testing.T) {
		var ticks atomic.Int32
		d := &mockDispatcher{}
		d.On("Dispatch", mock.Anything, mock.MatchedBy(isSync)).
			Run(func(mock.Arguments) { ticks.Add(1) }).
			Return(nil)
		job := jobs.NewTrackingSyncJob(d, "", slog.Default())

		require.NoError(t, job.Start())
		require.Eventually(t, func() bool {
			return ticks.Load() > 0
		}, 3*time.Second, 10*time.Millisecond)
		job.Stop()
	})

	t.Run("should reject an invalid spec", func(t *testing.T) {
		job := jobs.NewTrackingSyncJob(&mockDispatcher{}, "every now and then", slog.Default())

		require.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	d := &mockDispatcher{}
	d.On("Dispatch", mock.Anything, mock.Anything).Return(nil).Maybe()
	jm := jobs.NewJobManager(d, "", slog.Default())

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	bad := jobs.NewJobManager(d, "not a spec", slog.Default())
	err := bad.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracking sync job")
}
