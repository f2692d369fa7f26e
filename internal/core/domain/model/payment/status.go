package payment

import (
	"errors"
	"fmt"

	"droneflow/internal/pkg/errs"
)

// ErrAlreadyProcessing is returned by a reentrant confirm.
var ErrAlreadyProcessing = errors.New("payment already processing")

// Status of a Transaction.
//
//	Idle ──> Processing ──> Completed
//	              ╎
//	              └╌╌> Failed (reserved, unreachable)
type Status int

const (
	Unknown Status = iota
	Idle
	Processing
	Completed
	Failed
)

var statusNames = map[Status]string{
	Unknown:    "Unknown",
	Idle:       "Idle",
	Processing: "Processing",
	Completed:  "Completed",
	Failed:     "Failed",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s < Idle || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Start transitions Idle -> Processing.
func (s Status) Start() (Status, error) {
	switch s {
	case Idle:
		return Processing, nil
	case Processing:
		return 0, ErrAlreadyProcessing
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s),
		)
	}
}

// Complete transitions Processing -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completed, nil
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for k, n := range statusNames {
		if n == string(text) {
			*s = k
			return nil
		}
	}
	return errs.NewValueIsInvalidError("status " + string(text))
}
