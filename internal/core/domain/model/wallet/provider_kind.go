package wallet

import (
	"strings"

	"droneflow/internal/pkg/errs"
)

// ProviderKind tags the capability set a wallet provider exposes.
type ProviderKind int

const (
	UnknownProvider ProviderKind = iota
	// Compass is a SEI Compass style provider (sei_connect / sei_accounts).
	Compass
	// Ethereum is a generic EIP-1193 provider (eth_requestAccounts / eth_accounts).
	Ethereum
)

var providerKindNames = map[ProviderKind]string{
	UnknownProvider: "unknown",
	Compass:         "compass",
	Ethereum:        "ethereum",
}

func (k ProviderKind) String() string {
	if n, ok := providerKindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseProviderKind accepts "compass" and "ethereum" case-insensitively.
func ParseProviderKind(s string) (ProviderKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compass":
		return Compass, nil
	case "ethereum":
		return Ethereum, nil
	default:
		return UnknownProvider, errs.NewValueIsInvalidError("provider " + s)
	}
}

// Account is one address granted by a provider.
type Account struct {
	Address string `json:"address"`
}

func (k ProviderKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText maps "unknown" back to UnknownProvider so empty sessions round-trip.
func (k *ProviderKind) UnmarshalText(text []byte) error {
	if string(text) == providerKindNames[UnknownProvider] {
		*k = UnknownProvider
		return nil
	}
	parsed, err := ParseProviderKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
