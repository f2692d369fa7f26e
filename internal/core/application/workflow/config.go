package workflow

import (
	"errors"
	"time"

	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/core/domain/model/pricing"
	"droneflow/internal/pkg/errs"
)

// Config carries the fixed prices, delays and tracking settings of the checkout flow.
type Config struct {
	Subtotal   kernel.Money
	Shipping   kernel.Money
	PromoRules []pricing.PromoRule

	// MockBalance is reported for a connected wallet in absence of a live balance query.
	MockBalance kernel.Money
	Currency    string

	// SettlementDelay elapses between confirm and Completed (T1).
	SettlementDelay time.Duration
	// HandoffDelay elapses between Completed and the tracker hand-off (T2).
	HandoffDelay time.Duration

	// HandoffProgressOverride, when set, is the progress shown until the first advance.
	HandoffProgressOverride *int
	// StageInterval is the time per tracking stage; zero disables time based advancing.
	StageInterval time.Duration
}

// DefaultConfig mirrors the values of the first release.
func DefaultConfig() Config {
	return Config{
		Subtotal:        kernel.MustMoney(15.5),
		Shipping:        kernel.Zero,
		PromoRules:      pricing.DefaultPromoRules(),
		MockBalance:     kernel.MustMoney(123.45),
		Currency:        "SEI",
		SettlementDelay: 3 * time.Second,
		HandoffDelay:    2 * time.Second,
		StageInterval:   15 * time.Second,
	}
}

func (c Config) Validate() error {
	var problems []error
	if !c.Subtotal.IsPositive() {
		problems = append(problems, errs.NewValueIsInvalidError("subtotal"))
	}
	if c.Currency == "" {
		problems = append(problems, errs.NewValueIsRequiredError("currency"))
	}
	if c.SettlementDelay < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("settlementDelay", c.SettlementDelay, 0, "unbounded"))
	}
	if c.HandoffDelay < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("handoffDelay", c.HandoffDelay, 0, "unbounded"))
	}
	if c.StageInterval < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("stageInterval", c.StageInterval, 0, "unbounded"))
	}
	if o := c.HandoffProgressOverride; o != nil && (*o < 0 || *o > 100) {
		problems = append(problems, errs.NewValueIsOutOfRangeError("handoffProgressOverride", *o, 0, 100))
	}
	return errors.Join(problems...)
}
