package wallet

import (
	"errors"
	"fmt"

	"droneflow/internal/pkg/errs"
)

var (
	// ErrConnectInFlight is returned when a connect is requested while another is pending.
	ErrConnectInFlight = errors.New("wallet connection already in progress")
	// ErrAlreadyConnected is returned when a connect is requested on a live session.
	ErrAlreadyConnected = errors.New("wallet already connected")
)

// Status is the connection state of a Session.
//
//	Disconnected ──> Connecting ──> Connected
//	      ^              │              │
//	      └──────────────┴──────────────┘
//	  (provider absent/rejected, or disconnect)
type Status int

const (
	Unknown Status = iota
	Disconnected
	Connecting
	Connected
)

var statusNames = map[Status]string{
	Unknown:      "Unknown",
	Disconnected: "Disconnected",
	Connecting:   "Connecting",
	Connected:    "Connected",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s < Disconnected || s > Connected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// BeginConnect is only allowed from Disconnected.
func (s Status) BeginConnect() (Status, error) {
	switch s {
	case Disconnected:
		return Connecting, nil
	case Connecting:
		return 0, ErrConnectInFlight
	case Connected:
		return 0, ErrAlreadyConnected
	default:
		return 0, s.Validate()
	}
}

// CompleteConnect is only allowed from Connecting.
func (s Status) CompleteConnect() (Status, error) {
	if s != Connecting {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete a connection", s),
		)
	}
	return Connected, nil
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
