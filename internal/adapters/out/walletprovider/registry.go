package walletprovider

import (
	"context"
	"slices"

	"droneflow/internal/core/domain/model/wallet"
	"droneflow/internal/core/ports"
)

var preference = map[wallet.ProviderKind]int{
	wallet.Compass:  0,
	wallet.Ethereum: 1,
}

// Registry is the set of installed providers. Detect returns the preferred one.
type Registry struct {
	providers []ports.WalletProvider
}

// NewRegistry ignores nil providers. Zero providers is a valid, empty install.
func NewRegistry(providers ...ports.WalletProvider) *Registry {
	installed := make([]ports.WalletProvider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			installed = append(installed, p)
		}
	}
	slices.SortStableFunc(installed, func(a, b ports.WalletProvider) int {
		return rank(a.Kind()) - rank(b.Kind())
	})
	return &Registry{providers: installed}
}

func (r *Registry) Detect(ctx context.Context) (ports.WalletProvider, bool) {
	if ctx.Err() != nil || len(r.providers) == 0 {
		return nil, false
	}
	return r.providers[0], true
}

// Kinds lists the installed providers in preference order.
func (r *Registry) Kinds() []wallet.ProviderKind {
	kinds := make([]wallet.ProviderKind, len(r.providers))
	for i, p := range r.providers {
		kinds[i] = p.Kind()
	}
	return kinds
}

func rank(k wallet.ProviderKind) int {
	if r, ok := preference[k]; ok {
		return r
	}
	return len(preference)
}
