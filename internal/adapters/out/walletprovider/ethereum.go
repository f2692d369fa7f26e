package walletprovider

import (
	"context"
	"strings"

	"droneflow/internal/core/domain/model/wallet"
	"droneflow/internal/core/ports"
)

const (
	methodEthRequestAccounts = "eth_requestAccounts"
	methodEthAccounts        = "eth_accounts"
)

// Ethereum talks to a generic EIP-1193 extension.
type Ethereum struct {
	ext Requester
}

func NewEthereum(ext Requester) *Ethereum {
	return &Ethereum{ext: ext}
}

func (p *Ethereum) Kind() wallet.ProviderKind {
	return wallet.Ethereum
}

func (p *Ethereum) RequestAccounts(ctx context.Context) ([]wallet.Account, error) {
	addresses, err := call[[]string](ctx, p.ext, methodEthAccounts)
	if err != nil {
		return nil, err
	}
	return hexAccounts(addresses), nil
}

func (p *Ethereum) RequestConnection(ctx context.Context) (ports.Connection, error) {
	addresses, err := call[[]string](ctx, p.ext, methodEthRequestAccounts)
	if err != nil {
		return ports.Connection{}, err
	}
	return ports.Connection{Accounts: hexAccounts(addresses)}, nil
}

// hexAccounts lowercases addresses so checksummed and plain forms compare equal.
func hexAccounts(addresses []string) []wallet.Account {
	out := make([]wallet.Account, 0, len(addresses))
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		a = "0x" + strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(a, "0x"), "0X"))
		out = append(out, wallet.Account{Address: a})
	}
	return out
}
