package order

import (
	"errors"
	"fmt"

	"droneflow/internal/pkg/errs"
)

// ErrValidationBlocked is returned when a step gate is closed. Callers treat it as
// "keep the Next button disabled", never as a user-facing failure.
var ErrValidationBlocked = errors.New("step gate is not satisfied")

// Step is the wizard position.
//
//	Addresses ──> Package ──> Review
//	    ^            │  ^        │
//	    └────────────┘  └────────┘
//	       (retreat is always allowed)
type Step int

const (
	UnknownStep Step = iota
	Addresses
	Package
	Review
)

var stepNames = map[Step]string{
	UnknownStep: "Unknown",
	Addresses:   "Addresses",
	Package:     "Package",
	Review:      "Review",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return "Unknown"
}

func (s Step) Validate() error {
	if s < Addresses || s > Review {
		return errs.NewValueIsOutOfRangeError("step", int(s), int(Addresses), int(Review))
	}
	return nil
}

// Next returns the following step if the draft satisfies the gate of s.
// Review is terminal for the wizard; confirmation happens in the workflow.
func (s Step) Next(d *Draft) (Step, error) {
	if err := s.Validate(); err != nil {
		return UnknownStep, err
	}
	if s == Review {
		return UnknownStep, errs.NewValueIsInvalidErrorWithCause(
			"step",
			fmt.Errorf("%s is the last step", s),
		)
	}
	if !d.CanAdvance(s) {
		return UnknownStep, ErrValidationBlocked
	}
	return s + 1, nil
}

// Previous returns the preceding step; Addresses stays on Addresses.
func (s Step) Previous() (Step, error) {
	if err := s.Validate(); err != nil {
		return UnknownStep, err
	}
	if s == Addresses {
		return Addresses, nil
	}
	return s - 1, nil
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for k, n := range stepNames {
		if n == string(text) {
			*s = k
			return nil
		}
	}
	return errs.NewValueIsInvalidError("step " + string(text))
}
