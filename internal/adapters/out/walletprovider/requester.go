package walletprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Requester is the raw request channel of one wallet extension.
type Requester interface {
	Request(ctx context.Context, method string) (json.RawMessage, error)
}

// ErrUserRejected is what extensions answer when the user dismisses the prompt.
var ErrUserRejected = errors.New("user rejected the request")

// ErrUnsupportedMethod is returned for a method the extension does not know.
var ErrUnsupportedMethod = errors.New("unsupported method")

func call[T any](ctx context.Context, r Requester, method string) (T, error) {
	var out T
	raw, err := r.Request(ctx, method)
	if err != nil {
		return out, fmt.Errorf("%s: %w", method, err)
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%s: malformed answer: %w", method, err)
	}
	return out, nil
}
