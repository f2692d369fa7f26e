package tracking

import (
	"errors"
	"time"

	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/pkg/errs"
)

var ErrTrackerIsNotConstructed = errors.New("Tracker must be created via NewTracker constructor")

// Tracker follows one order from OrderPlaced to Delivered.
type Tracker struct {
	orderID       kernel.UUID
	stage         Stage
	override      *int
	dispatchedAt  time.Time
	stageInterval time.Duration

	isConstructed bool
}

// NewTracker seeds a tracker at OrderPlaced. stageInterval drives Sync; zero
// disables time based advancing. override, when non-nil, must be within [0, 100].
func NewTracker(orderID kernel.UUID, dispatchedAt time.Time, stageInterval time.Duration, override *int) (*Tracker, error) {
	t := &Tracker{
		stage:         OrderPlaced,
		dispatchedAt:  dispatchedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setOrderID(orderID),
		t.setStageInterval(stageInterval),
		t.setOverride(override),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tracker) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackerIsNotConstructed
	}
	return nil
}

func (t *Tracker) OrderID() kernel.UUID {
	return t.orderID
}

func (t *Tracker) Stage() Stage {
	return t.stage
}

func (t *Tracker) DispatchedAt() time.Time {
	return t.dispatchedAt
}

func (t *Tracker) IsDelivered() bool {
	return t.stage.IsTerminal()
}

// ProgressPercent prefers the seeded override over the stage derived value.
func (t *Tracker) ProgressPercent() int {
	if t.override != nil {
		return *t.override
	}
	return t.stage.Percent()
}

// ETA is the moment Sync would reach Delivered. Zero when time based advancing is off.
func (t *Tracker) ETA() time.Time {
	if t.stageInterval <= 0 {
		return time.Time{}
	}
	return t.dispatchedAt.Add(t.stageInterval * time.Duration(StageCount-1))
}

// Advance moves exactly one stage forward and drops the override. At Delivered it
// is a no-op and reports false.
func (t *Tracker) Advance() bool {
	if t.stage.IsTerminal() {
		return false
	}
	t.stage++
	t.override = nil
	return true
}

// Sync advances to the stage implied by the time elapsed since dispatch and
// returns how many stages were crossed. It never moves backwards.
func (t *Tracker) Sync(now time.Time) int {
	if t.stageInterval <= 0 || now.Before(t.dispatchedAt) {
		return 0
	}

	target := Stage(min(int(now.Sub(t.dispatchedAt)/t.stageInterval), int(Delivered)))
	advanced := 0
	for t.stage < target && t.Advance() {
		advanced++
	}
	return advanced
}

func (t *Tracker) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.orderID = id
	return nil
}

func (t *Tracker) setStageInterval(d time.Duration) error {
	if d < 0 {
		return errs.NewValueIsOutOfRangeError("stageInterval", d, 0, "unbounded")
	}
	t.stageInterval = d
	return nil
}

func (t *Tracker) setOverride(override *int) error {
	if override == nil {
		return nil
	}
	if *override < 0 || *override > 100 {
		return errs.NewValueIsOutOfRangeError("progressOverride", *override, 0, 100)
	}
	v := *override
	t.override = &v
	return nil
}
