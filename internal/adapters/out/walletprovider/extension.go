package walletprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Extension is an in-process wallet extension. It grants its configured
// accounts on the connect method and lists them afterwards until revoked.
//
//	ext := walletprovider.NewExtension([]string{"sei1..."}, walletprovider.WithAuthorized())
//	registry := walletprovider.NewRegistry(walletprovider.NewCompass(ext))
type Extension struct {
	mu         sync.Mutex
	accounts   []string
	authorized bool
	reject     bool
}

type ExtensionOption func(*Extension)

// WithAuthorized starts the extension with the site already authorized.
func WithAuthorized() ExtensionOption {
	return func(e *Extension) { e.authorized = true }
}

// WithRejection makes every connect prompt fail with ErrUserRejected.
func WithRejection() ExtensionOption {
	return func(e *Extension) { e.reject = true }
}

func NewExtension(accounts []string, opts ...ExtensionOption) *Extension {
	e := &Extension{accounts: append([]string(nil), accounts...)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Revoke forgets the authorization, as if the user disconnected the site in
// the extension itself.
func (e *Extension) Revoke() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.authorized = false
}

func (e *Extension) Request(ctx context.Context, method string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch method {
	case methodSeiConnect, methodEthRequestAccounts:
		if e.reject {
			return nil, ErrUserRejected
		}
		e.authorized = true
		if method == methodSeiConnect {
			return json.Marshal(compassConnection{Accounts: e.compassAccounts()})
		}
		return json.Marshal(e.accounts)
	case methodSeiAccounts:
		if !e.authorized {
			return json.Marshal([]compassAccount{})
		}
		return json.Marshal(e.compassAccounts())
	case methodEthAccounts:
		if !e.authorized {
			return json.Marshal([]string{})
		}
		return json.Marshal(e.accounts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
}

func (e *Extension) compassAccounts() []compassAccount {
	out := make([]compassAccount, len(e.accounts))
	for i, a := range e.accounts {
		out[i] = compassAccount{Address: a}
	}
	return out
}
