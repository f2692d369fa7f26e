package kernel

import (
	"fmt"
	"strings"

	"droneflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits Money keeps.
const MoneyScale = 2

// Money is a non-negative amount in the session currency. Arithmetic is done on
// decimals so 15.5 - 2.5 is exactly 13.
type Money struct {
	amount decimal.Decimal
}

// Zero is 0.00.
var Zero = Money{amount: decimal.Zero}

// NewMoney rejects negative amounts and rounds to MoneyScale.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// MoneyFromFloat is intended for configuration defaults such as the 15.5 subtotal.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// MoneyFromString parses user input like "12.5". Input is never rounded: more
// than MoneyScale significant fractional digits is invalid.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a number", s))
	}
	if !d.Equal(d.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%q has more than %d decimal places", s, MoneyScale),
		)
	}
	return NewMoney(d)
}

// MustMoney panics on negative input; use only with literals.
func MustMoney(f float64) Money {
	m, err := MoneyFromFloat(f)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub never goes below zero: a discount larger than the subtotal yields Zero.
func (m Money) Sub(other Money) Money {
	d := m.amount.Sub(other.amount)
	if d.IsNegative() {
		return Zero
	}
	return Money{amount: d}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// MarshalJSON encodes Money as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (m *Money) UnmarshalJSON(b []byte) error {
	parsed, err := MoneyFromString(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
