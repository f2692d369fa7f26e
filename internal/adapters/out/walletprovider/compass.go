package walletprovider

import (
	"context"
	"strings"

	"droneflow/internal/core/domain/model/wallet"
	"droneflow/internal/core/ports"
)

const (
	methodSeiConnect  = "sei_connect"
	methodSeiAccounts = "sei_accounts"
)

type compassAccount struct {
	Address string `json:"address"`
}

type compassConnection struct {
	Accounts []compassAccount `json:"accounts"`
}

// Compass talks to a SEI Compass extension.
type Compass struct {
	ext Requester
}

func NewCompass(ext Requester) *Compass {
	return &Compass{ext: ext}
}

func (p *Compass) Kind() wallet.ProviderKind {
	return wallet.Compass
}

func (p *Compass) RequestAccounts(ctx context.Context) ([]wallet.Account, error) {
	accounts, err := call[[]compassAccount](ctx, p.ext, methodSeiAccounts)
	if err != nil {
		return nil, err
	}
	return toAccounts(accounts), nil
}

func (p *Compass) RequestConnection(ctx context.Context) (ports.Connection, error) {
	conn, err := call[compassConnection](ctx, p.ext, methodSeiConnect)
	if err != nil {
		return ports.Connection{}, err
	}
	return ports.Connection{Accounts: toAccounts(conn.Accounts)}, nil
}

func toAccounts(in []compassAccount) []wallet.Account {
	out := make([]wallet.Account, 0, len(in))
	for _, a := range in {
		if addr := strings.TrimSpace(a.Address); addr != "" {
			out = append(out, wallet.Account{Address: addr})
		}
	}
	return out
}
