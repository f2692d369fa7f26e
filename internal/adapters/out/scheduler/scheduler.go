// Package scheduler provides the wall clock implementations of ports.Scheduler
// and ports.Clock.
package scheduler

import (
	"time"

	"droneflow/internal/core/ports"
)

// Timers schedules callbacks with time.AfterFunc.
type Timers struct{}

func NewTimers() Timers {
	return Timers{}
}

func (Timers) AfterFunc(d time.Duration, f func()) ports.Task {
	return time.AfterFunc(d, f)
}

// SystemClock reads time.Now in UTC.
type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
