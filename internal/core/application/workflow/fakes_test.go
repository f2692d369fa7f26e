package workflow_test

import (
	"context"
	"sync"
	"time"

	"droneflow/internal/core/application/workflow"
	"droneflow/internal/core/domain/model/wallet"
	"droneflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// manualScheduler records callbacks; tests fire them explicitly.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{delay: d, fn: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) task(i int) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks[i]
}

func (s *manualScheduler) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// fire runs task i even when it was stopped, which is what a timer that
// already popped before Stop looks like to the controller.
func (s *manualScheduler) fire(i int) {
	s.task(i).fn()
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recorder struct {
	mu            sync.Mutex
	snapshots     []workflow.Snapshot
	notifications []workflow.Notification
}

func (r *recorder) Render(s workflow.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
}

func (r *recorder) Notify(n workflow.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorder) count(code workflow.Code) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.notifications {
		if x.Code == code {
			n++
		}
	}
	return n
}

func (r *recorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

func (r *recorder) last() workflow.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notifications[len(r.notifications)-1]
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Kind() wallet.ProviderKind {
	return m.Called().Get(0).(wallet.ProviderKind)
}

func (m *mockProvider) RequestAccounts(ctx context.Context) ([]wallet.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]wallet.Account)
	return accounts, args.Error(1)
}

func (m *mockProvider) RequestConnection(ctx context.Context) (ports.Connection, error) {
	args := m.Called(ctx)
	conn, _ := args.Get(0).(ports.Connection)
	return conn, args.Error(1)
}

type mockDetector struct {
	mock.Mock
}

func (m *mockDetector) Detect(ctx context.Context) (ports.WalletProvider, bool) {
	args := m.Called(ctx)
	provider, _ := args.Get(0).(ports.WalletProvider)
	return provider, args.Bool(1)
}
