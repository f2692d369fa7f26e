package pricing

import (
	"errors"

	"droneflow/internal/core/domain/model/kernel"
)

var ErrPriceSummaryIsNotConstructed = errors.New("PriceSummary must be created via NewPriceSummary constructor")

// PriceSummary is an immutable price breakdown.
type PriceSummary struct {
	subtotal    kernel.Money
	shipping    kernel.Money
	discount    kernel.Money
	appliedCode string

	isConstructed bool
}

// NewPriceSummary starts with no discount.
func NewPriceSummary(subtotal, shipping kernel.Money) PriceSummary {
	return PriceSummary{
		subtotal:      subtotal,
		shipping:      shipping,
		discount:      kernel.Zero,
		isConstructed: true,
	}
}

func (s PriceSummary) Validate() error {
	if !s.isConstructed {
		return ErrPriceSummaryIsNotConstructed
	}
	return nil
}

func (s PriceSummary) Subtotal() kernel.Money {
	return s.subtotal
}

func (s PriceSummary) Shipping() kernel.Money {
	return s.shipping
}

func (s PriceSummary) Discount() kernel.Money {
	return s.discount
}

// AppliedCode is the normalized promo code behind the current discount, or "".
func (s PriceSummary) AppliedCode() string {
	return s.appliedCode
}

// Total is recomputed on every call.
func (s PriceSummary) Total() kernel.Money {
	return s.subtotal.Add(s.shipping).Sub(s.discount)
}

// withDiscount replaces, not adds to, the current discount.
func (s PriceSummary) withDiscount(code string, discount kernel.Money) PriceSummary {
	s.discount = discount
	s.appliedCode = code
	return s
}
