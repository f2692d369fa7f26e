// Package ports defines the contracts between the workflow core and the outside
// world: installed wallet provider capabilities and the time source.
package ports

import (
	"context"

	"droneflow/internal/core/domain/model/wallet"
)

// WalletProvider is one installed wallet extension capability.
// Implementations must honor ctx cancellation: the workflow cancels an
// outstanding request when it is torn down.
type WalletProvider interface {
	// Kind tags the capability set (compass-like or ethereum-like).
	Kind() wallet.ProviderKind

	// RequestAccounts lists accounts the user already authorized, without prompting.
	// An empty list is a normal answer.
	RequestAccounts(ctx context.Context) ([]wallet.Account, error)

	// RequestConnection prompts the user to authorize the site. An error means
	// the user rejected the prompt or the provider failed.
	RequestConnection(ctx context.Context) (Connection, error)
}

// Connection is the provider answer to RequestConnection.
type Connection struct {
	Accounts []wallet.Account
}

// ProviderDetector finds the preferred installed provider at call time.
// ok == false is the ordinary "nothing installed" answer, not a failure.
type ProviderDetector interface {
	Detect(ctx context.Context) (provider WalletProvider, ok bool)
}
