package pricing_test

import (
	"testing"

	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/core/domain/model/pricing"
	"droneflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummary() pricing.PriceSummary {
	return pricing.NewPriceSummary(kernel.MustMoney(15.5), kernel.Zero)
}

func TestPriceSummary(t *testing.T) {
	t.Run("should derive total without discount", func(t *testing.T) {
		s := newSummary()

		require.NoError(t, s.Validate())
		assert.Equal(t, "15.50", s.Total().String())
		assert.True(t, s.Discount().IsZero())
		assert.Empty(t, s.AppliedCode())
	})

	t.Run("should include shipping in total", func(t *testing.T) {
		s := pricing.NewPriceSummary(kernel.MustMoney(15.5), kernel.MustMoney(1))

		assert.Equal(t, "16.50", s.Total().String())
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var s pricing.PriceSummary

		require.ErrorIs(t, s.Validate(), pricing.ErrPriceSummaryIsNotConstructed)
	})
}

func TestPromoEngine_ApplyCode(t *testing.T) {
	engine := pricing.NewPromoEngine(pricing.DefaultPromoRules()...)

	t.Run("should apply welcome discount", func(t *testing.T) {
		s, err := engine.ApplyCode("welcome", newSummary())

		require.NoError(t, err)
		assert.True(t, s.Discount().Equal(kernel.MustMoney(2.5)))
		assert.True(t, s.Total().Equal(kernel.MustMoney(13)))
		assert.True(t, s.Subtotal().Equal(kernel.MustMoney(15.5)))
		assert.Equal(t, pricing.WelcomeCode, s.AppliedCode())
	})

	t.Run("should be case insensitive", func(t *testing.T) {
		for _, code := range []string{"WELCOME", "Welcome", " welcome "} {
			s, err := engine.ApplyCode(code, newSummary())

			require.NoError(t, err, code)
			assert.True(t, s.Total().Equal(kernel.MustMoney(13)), code)
		}
	})

	t.Run("should be idempotent under repeated application", func(t *testing.T) {
		s := newSummary()
		for range 5 {
			var err error
			s, err = engine.ApplyCode("welcome", s)
			require.NoError(t, err)
		}

		assert.True(t, s.Discount().Equal(kernel.MustMoney(2.5)))
		assert.True(t, s.Total().Equal(kernel.MustMoney(13)))
	})

	t.Run("should reject other codes without changes", func(t *testing.T) {
		for _, code := range []string{"", "welcome10", "SAVE20", "wel come"} {
			before := newSummary()

			after, err := engine.ApplyCode(code, before)

			require.ErrorIs(t, err, pricing.ErrInvalidPromoCode, code)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, code)
			assert.Equal(t, before, after, code)
		}
	})

	t.Run("should keep earlier discount when a later code is rejected", func(t *testing.T) {
		s, err := engine.ApplyCode("welcome", newSummary())
		require.NoError(t, err)

		after, err := engine.ApplyCode("bogus", s)

		require.ErrorIs(t, err, pricing.ErrInvalidPromoCode)
		assert.Equal(t, s, after)
	})

	t.Run("should use configured rule table", func(t *testing.T) {
		custom := pricing.NewPromoEngine(pricing.PromoRule{Code: "Drone5", Discount: kernel.MustMoney(5)})

		s, err := custom.ApplyCode("drone5", newSummary())
		require.NoError(t, err)
		assert.Equal(t, "10.50", s.Total().String())

		_, err = custom.ApplyCode("welcome", newSummary())
		require.ErrorIs(t, err, pricing.ErrInvalidPromoCode)
	})
}
