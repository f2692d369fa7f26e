package http

import (
	"errors"
	"fmt"

	"droneflow/internal/core/application/workflow"
)

// IntentRequest is the body of POST /api/v1/workflow/intents. Only the members
// the intent type needs are read.
type IntentRequest struct {
	Type    string `json:"type"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Code    string `json:"code,omitempty"`
	Amount  string `json:"amount,omitempty"`
	Address string `json:"address,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IntentResponse carries the snapshot after the intent, and the error when the
// intent was not applied.
type IntentResponse struct {
	Error    *Error            `json:"error,omitempty"`
	Snapshot workflow.Snapshot `json:"snapshot"`
}

var errUnknownIntent = errors.New("unknown intent type")

func (r IntentRequest) toIntent() (workflow.Intent, error) {
	switch r.Type {
	case "setField":
		return workflow.NewSetFieldIntent(r.Field, r.Value)
	case "advanceStep":
		return workflow.NewAdvanceStepIntent(), nil
	case "retreatStep":
		return workflow.NewRetreatStepIntent(), nil
	case "applyPromo":
		return workflow.NewApplyPromoIntent(r.Code), nil
	case "confirmPayment":
		return workflow.NewConfirmPaymentIntent(), nil
	case "connectWallet":
		return workflow.NewConnectWalletIntent(), nil
	case "disconnectWallet":
		return workflow.NewDisconnectWalletIntent(), nil
	case "sendFunds":
		return workflow.NewSendFundsIntent(r.Amount, r.Address), nil
	case "editSendForm":
		return workflow.NewEditSendFormIntent(r.Amount, r.Address), nil
	case "cancelOrder":
		return workflow.NewCancelOrderIntent(), nil
	case "startNewOrder":
		return workflow.NewStartNewOrderIntent(), nil
	case "advanceTracking":
		return workflow.NewAdvanceTrackingIntent(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownIntent, r.Type)
	}
}
