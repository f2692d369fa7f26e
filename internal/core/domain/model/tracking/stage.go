package tracking

import "droneflow/internal/pkg/errs"

// Stage is a position in the delivery progress list.
type Stage int

const (
	OrderPlaced Stage = iota
	DroneDispatched
	InTransit
	ArrivingSoon
	Delivered
)

// StageCount is the number of stages.
const StageCount = int(Delivered) + 1

var stageNames = [StageCount]string{
	OrderPlaced:     "OrderPlaced",
	DroneDispatched: "DroneDispatched",
	InTransit:       "InTransit",
	ArrivingSoon:    "ArrivingSoon",
	Delivered:       "Delivered",
}

// Stages returns all stages in order.
func Stages() []Stage {
	return []Stage{OrderPlaced, DroneDispatched, InTransit, ArrivingSoon, Delivered}
}

func (s Stage) String() string {
	if s.IsValid() {
		return stageNames[s]
	}
	return "Unknown"
}

func (s Stage) IsValid() bool {
	return s >= OrderPlaced && s <= Delivered
}

func (s Stage) IsTerminal() bool {
	return s == Delivered
}

// Percent is index/(count-1)*100 rounded to the nearest integer.
func (s Stage) Percent() int {
	num := int(s) * 100
	den := StageCount - 1
	return (num + den/2) / den
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(text []byte) error {
	for i, n := range stageNames {
		if n == string(text) {
			*s = Stage(i)
			return nil
		}
	}
	return errs.NewValueIsInvalidError("stage " + string(text))
}
