package workflow

import (
	"time"

	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/core/domain/model/order"
	"droneflow/internal/core/domain/model/payment"
	"droneflow/internal/core/domain/model/tracking"
	"droneflow/internal/core/domain/model/wallet"
)

// Snapshot is an immutable copy of the workflow state. Version increases by one
// on every published mutation.
type Snapshot struct {
	Version    uint64        `json:"version"`
	Step       order.Step    `json:"step"`
	CanAdvance bool          `json:"canAdvance"`
	Draft      order.Details `json:"draft"`
	Price      PriceView     `json:"price"`
	Wallet     WalletView    `json:"wallet"`
	Payment    PaymentView   `json:"payment"`
	Tracking   *TrackingView `json:"tracking,omitempty"`
}

type PriceView struct {
	Subtotal  kernel.Money `json:"subtotal"`
	Shipping  kernel.Money `json:"shipping"`
	Discount  kernel.Money `json:"discount"`
	Total     kernel.Money `json:"total"`
	PromoCode string       `json:"promoCode,omitempty"`
	Currency  string       `json:"currency"`
}

type WalletView struct {
	Status    wallet.Status       `json:"status"`
	Provider  wallet.ProviderKind `json:"provider"`
	Address   string              `json:"address,omitempty"`
	Balance   kernel.Money        `json:"balance"`
	Currency  string              `json:"currency"`
	Form      wallet.SendForm     `json:"form"`
	Transfers []wallet.Transfer   `json:"transfers"`
}

type PaymentView struct {
	Status      payment.Status `json:"status"`
	Amount      kernel.Money   `json:"amount"`
	Reference   string         `json:"reference,omitempty"`
	StartedAt   *time.Time     `json:"startedAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

type TrackingView struct {
	OrderID         kernel.UUID    `json:"orderId"`
	Stage           tracking.Stage `json:"stage"`
	StageIndex      int            `json:"stageIndex"`
	ProgressPercent int            `json:"progressPercent"`
	DispatchedAt    time.Time      `json:"dispatchedAt"`
	ETA             *time.Time     `json:"eta,omitempty"`
	Delivered       bool           `json:"delivered"`
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Version:    c.version,
		Step:       c.step,
		CanAdvance: c.draft.CanAdvance(c.step),
		Draft:      c.draft.Freeze(),
		Price: PriceView{
			Subtotal:  c.price.Subtotal(),
			Shipping:  c.price.Shipping(),
			Discount:  c.price.Discount(),
			Total:     c.price.Total(),
			PromoCode: c.price.AppliedCode(),
			Currency:  c.cfg.Currency,
		},
		Wallet: WalletView{
			Status:    c.session.Status(),
			Provider:  c.session.Provider(),
			Address:   c.session.Address(),
			Balance:   c.session.Balance(),
			Currency:  c.cfg.Currency,
			Form:      c.session.Form(),
			Transfers: c.session.Transfers(),
		},
		Payment: PaymentView{
			Status:      c.tx.Status(),
			Amount:      c.tx.Amount(),
			Reference:   c.tx.Reference(),
			StartedAt:   timePtr(c.tx.StartedAt()),
			CompletedAt: timePtr(c.tx.CompletedAt()),
		},
	}

	if c.tracker != nil {
		s.Tracking = &TrackingView{
			OrderID:         c.tracker.OrderID(),
			Stage:           c.tracker.Stage(),
			StageIndex:      int(c.tracker.Stage()),
			ProgressPercent: c.tracker.ProgressPercent(),
			DispatchedAt:    c.tracker.DispatchedAt(),
			ETA:             timePtr(c.tracker.ETA()),
			Delivered:       c.tracker.IsDelivered(),
		}
	}

	return s
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
