package http

import (
	"slices"
	"sync"

	"droneflow/internal/core/application/workflow"
)

// DefaultFeedLimit is how many notifications the feed keeps.
const DefaultFeedLimit = 50

// Feed is the workflow.Presenter behind the HTTP boundary. It keeps the last
// rendered snapshot and a bounded newest-first list of notifications.
type Feed struct {
	mu            sync.RWMutex
	latest        workflow.Snapshot
	notifications []workflow.Notification
	limit         int
}

// NewFeed falls back to DefaultFeedLimit for a non-positive limit.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return &Feed{limit: limit}
}

func (f *Feed) Render(s workflow.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.Version >= f.latest.Version {
		f.latest = s
	}
}

func (f *Feed) Notify(n workflow.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append([]workflow.Notification{n}, f.notifications...)
	if len(f.notifications) > f.limit {
		f.notifications = f.notifications[:f.limit]
	}
}

func (f *Feed) Latest() workflow.Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.latest
}

func (f *Feed) Notifications() []workflow.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.notifications)
}
