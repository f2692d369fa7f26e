package ports

import "time"

// Task is a scheduled one-shot callback.
type Task interface {
	// Stop cancels the callback. It reports false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// Clock is the time source for timestamps and tracking progress.
type Clock interface {
	Now() time.Time
}
