package workflow

import (
	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/core/ports"
)

// settlement owns the two chained timers of one confirmed draft: complete (T1)
// settles the payment, handoff (T2) seeds the tracker. handoff is only scheduled
// from inside the complete callback, so it can never fire first.
//
// Callbacks compare their settlement with Controller.settlement and drop
// themselves once it was replaced or cancelled. All fields are guarded by the
// controller mutex.
type settlement struct {
	orderID  kernel.UUID
	complete ports.Task
	handoff  ports.Task
}

func newSettlement() *settlement {
	return &settlement{orderID: kernel.NewUUID()}
}

// cancel stops whichever timers are still pending.
func (s *settlement) cancel() {
	if s.complete != nil {
		s.complete.Stop()
	}
	if s.handoff != nil {
		s.handoff.Stop()
	}
}
