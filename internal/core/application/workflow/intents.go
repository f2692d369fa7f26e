package workflow

import (
	"errors"

	"droneflow/internal/core/domain/model/order"
	"droneflow/internal/pkg/guard"
)

var ErrIntentIsNotConstructed = errors.New("intent must be created via its constructor")

// Intent is a named user or timer triggered action accepted by Controller.Dispatch.
type Intent interface {
	Name() string
	Validate() error
}

// SetFieldIntent overwrites one draft field.
//
//	intent, err := NewSetFieldIntent("senderName", "John Doe")
//	if err != nil {
//	    return err // unknown field name
//	}
//	snapshot, err := controller.Dispatch(ctx, intent)
type SetFieldIntent struct {
	field order.Field
	value string
	guard guard.ConstructorGuard
}

// NewSetFieldIntent resolves the field name; the value is not constrained.
func NewSetFieldIntent(name, value string) (SetFieldIntent, error) {
	field, err := order.ParseField(name)
	if err != nil {
		return SetFieldIntent{}, err
	}
	return SetFieldIntent{field: field, value: value, guard: guard.NewConstructorGuard()}, nil
}

func (i SetFieldIntent) Name() string {
	return "setField"
}

func (i SetFieldIntent) Field() order.Field {
	return i.field
}

func (i SetFieldIntent) Value() string {
	return i.value
}

func (i SetFieldIntent) Validate() error {
	return i.guard.Validate(ErrIntentIsNotConstructed)
}

// ApplyPromoIntent evaluates a promo code against the current price summary.
type ApplyPromoIntent struct {
	code  string
	guard guard.ConstructorGuard
}

func NewApplyPromoIntent(code string) ApplyPromoIntent {
	return ApplyPromoIntent{code: code, guard: guard.NewConstructorGuard()}
}

func (i ApplyPromoIntent) Name() string {
	return "applyPromo"
}

func (i ApplyPromoIntent) Code() string {
	return i.code
}

func (i ApplyPromoIntent) Validate() error {
	return i.guard.Validate(ErrIntentIsNotConstructed)
}

// SendFundsIntent submits a transfer from the connected wallet. Blank arguments
// fall back to the send form.
type SendFundsIntent struct {
	amount  string
	address string
	guard   guard.ConstructorGuard
}

func NewSendFundsIntent(amount, address string) SendFundsIntent {
	return SendFundsIntent{amount: amount, address: address, guard: guard.NewConstructorGuard()}
}

func (i SendFundsIntent) Name() string {
	return "sendFunds"
}

func (i SendFundsIntent) Amount() string {
	return i.amount
}

func (i SendFundsIntent) Address() string {
	return i.address
}

func (i SendFundsIntent) Validate() error {
	return i.guard.Validate(ErrIntentIsNotConstructed)
}

// EditSendFormIntent replaces the pending send form input.
type EditSendFormIntent struct {
	amount  string
	address string
	guard   guard.ConstructorGuard
}

func NewEditSendFormIntent(amount, address string) EditSendFormIntent {
	return EditSendFormIntent{amount: amount, address: address, guard: guard.NewConstructorGuard()}
}

func (i EditSendFormIntent) Name() string {
	return "editSendForm"
}

func (i EditSendFormIntent) Amount() string {
	return i.amount
}

func (i EditSendFormIntent) Address() string {
	return i.address
}

func (i EditSendFormIntent) Validate() error {
	return i.guard.Validate(ErrIntentIsNotConstructed)
}

// simpleIntent backs every intent without arguments.
type simpleIntent struct {
	name  string
	guard guard.ConstructorGuard
}

func newSimpleIntent(name string) simpleIntent {
	return simpleIntent{name: name, guard: guard.NewConstructorGuard()}
}

func (i simpleIntent) Name() string {
	return i.name
}

func (i simpleIntent) Validate() error {
	return i.guard.Validate(ErrIntentIsNotConstructed)
}

type (
	AdvanceStepIntent      struct{ simpleIntent }
	RetreatStepIntent      struct{ simpleIntent }
	ConfirmPaymentIntent   struct{ simpleIntent }
	ConnectWalletIntent    struct{ simpleIntent }
	DisconnectWalletIntent struct{ simpleIntent }
	CancelOrderIntent      struct{ simpleIntent }
	StartNewOrderIntent    struct{ simpleIntent }
	AdvanceTrackingIntent  struct{ simpleIntent }
	SyncTrackingIntent     struct{ simpleIntent }
)

func NewAdvanceStepIntent() AdvanceStepIntent {
	return AdvanceStepIntent{newSimpleIntent("advanceStep")}
}

func NewRetreatStepIntent() RetreatStepIntent {
	return RetreatStepIntent{newSimpleIntent("retreatStep")}
}

func NewConfirmPaymentIntent() ConfirmPaymentIntent {
	return ConfirmPaymentIntent{newSimpleIntent("confirmPayment")}
}

func NewConnectWalletIntent() ConnectWalletIntent {
	return ConnectWalletIntent{newSimpleIntent("connectWallet")}
}

func NewDisconnectWalletIntent() DisconnectWalletIntent {
	return DisconnectWalletIntent{newSimpleIntent("disconnectWallet")}
}

// NewCancelOrderIntent discards the draft and any pending settlement.
func NewCancelOrderIntent() CancelOrderIntent {
	return CancelOrderIntent{newSimpleIntent("cancelOrder")}
}

// NewStartNewOrderIntent clears a handed-off order so a new draft can begin.
func NewStartNewOrderIntent() StartNewOrderIntent {
	return StartNewOrderIntent{newSimpleIntent("startNewOrder")}
}

func NewAdvanceTrackingIntent() AdvanceTrackingIntent {
	return AdvanceTrackingIntent{newSimpleIntent("advanceTracking")}
}

// NewSyncTrackingIntent is dispatched by the tracking job on every tick.
func NewSyncTrackingIntent() SyncTrackingIntent {
	return SyncTrackingIntent{newSimpleIntent("syncTracking")}
}
