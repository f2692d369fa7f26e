package pricing

import (
	"errors"
	"fmt"
	"strings"

	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/pkg/errs"
)

// ErrInvalidPromoCode is returned for codes missing from the rule table.
var ErrInvalidPromoCode = errors.New("invalid promo code")

// WelcomeCode is the code shipped in the default rule table.
const WelcomeCode = "welcome"

// PromoRule maps a code to a fixed discount.
type PromoRule struct {
	Code     string
	Discount kernel.Money
}

// DefaultPromoRules is {"welcome": 2.5}.
func DefaultPromoRules() []PromoRule {
	return []PromoRule{{Code: WelcomeCode, Discount: kernel.MustMoney(2.5)}}
}

// PromoEngine is safe to share; its rule table is fixed at construction.
type PromoEngine struct {
	rules map[string]kernel.Money
}

// NewPromoEngine indexes rules by normalized code. Later duplicates win.
func NewPromoEngine(rules ...PromoRule) PromoEngine {
	indexed := make(map[string]kernel.Money, len(rules))
	for _, r := range rules {
		indexed[normalize(r.Code)] = r.Discount
	}
	return PromoEngine{rules: indexed}
}

// ApplyCode sets the discount of a recognized code. Any other code returns the
// summary unchanged together with ErrInvalidPromoCode.
func (e PromoEngine) ApplyCode(code string, summary PriceSummary) (PriceSummary, error) {
	if err := summary.Validate(); err != nil {
		return summary, err
	}

	normalized := normalize(code)
	discount, ok := e.rules[normalized]
	if normalized == "" || !ok {
		return summary, fmt.Errorf("%w: %w", ErrInvalidPromoCode, errs.NewValueIsInvalidError("promoCode "+code))
	}

	return summary.withDiscount(normalized, discount), nil
}

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
