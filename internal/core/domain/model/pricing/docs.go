// Package pricing computes what the customer pays for a confirmed draft.
//
// PriceSummary keeps subtotal, shipping and discount; the total is always derived
// (subtotal + shipping - discount, floored at zero) and can never be set directly.
// PromoEngine evaluates promo codes against a fixed rule table. A recognized code
// sets the discount, it never accumulates, so re-applying a code is idempotent.
package pricing
