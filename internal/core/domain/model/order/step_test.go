package order_test

import (
	"testing"

	"droneflow/internal/core/domain/model/order"
	"droneflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeAddresses(t *testing.T, d *order.Draft) {
	t.Helper()
	require.NoError(t, d.SetField(order.SenderName, "John Doe"))
	require.NoError(t, d.SetField(order.SenderAddress, "123 Main St"))
	require.NoError(t, d.SetField(order.RecipientName, "Jane Smith"))
	require.NoError(t, d.SetField(order.RecipientAddress, "456 Oak Ave"))
}

func TestStep_Next(t *testing.T) {
	t.Run("should stay blocked while addresses are incomplete", func(t *testing.T) {
		d := order.NewDraft()

		next, err := order.Addresses.Next(d)

		require.ErrorIs(t, err, order.ErrValidationBlocked)
		assert.Equal(t, order.UnknownStep, next)
	})

	t.Run("should move through the wizard", func(t *testing.T) {
		d := order.NewDraft()
		completeAddresses(t, d)

		next, err := order.Addresses.Next(d)
		require.NoError(t, err)
		assert.Equal(t, order.Package, next)

		_, err = order.Package.Next(d)
		require.ErrorIs(t, err, order.ErrValidationBlocked)

		require.NoError(t, d.SetField(order.PackageDescription, "Electronics"))
		require.NoError(t, d.SetField(order.PackageWeight, "2.5 lbs"))

		next, err = order.Package.Next(d)
		require.NoError(t, err)
		assert.Equal(t, order.Review, next)
		assert.True(t, d.Complete())
	})

	t.Run("should not advance past review", func(t *testing.T) {
		_, err := order.Review.Next(order.NewDraft())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown step", func(t *testing.T) {
		_, err := order.UnknownStep.Next(order.NewDraft())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestStep_Previous(t *testing.T) {
	prev, err := order.Review.Previous()
	require.NoError(t, err)
	assert.Equal(t, order.Package, prev)

	prev, err = order.Package.Previous()
	require.NoError(t, err)
	assert.Equal(t, order.Addresses, prev)

	prev, err = order.Addresses.Previous()
	require.NoError(t, err)
	assert.Equal(t, order.Addresses, prev)
}

func TestParseField(t *testing.T) {
	cases := map[string]order.Field{
		"senderName":         order.SenderName,
		"SENDERADDRESS":      order.SenderAddress,
		"deliveryAddress":    order.RecipientAddress,
		"recipientAddress":   order.RecipientAddress,
		" packageWeight ":    order.PackageWeight,
		"packageDimensions":  order.PackageDimensions,
		"notes":              order.Notes,
		"packageDescription": order.PackageDescription,
	}
	for name, want := range cases {
		got, err := order.ParseField(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := order.ParseField("weightKg")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
