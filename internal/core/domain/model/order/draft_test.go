package order_test

import (
	"testing"

	"droneflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	t.Run("should create empty constructed draft", func(t *testing.T) {
		d := order.NewDraft()

		require.NoError(t, d.Validate())
		for _, f := range order.Fields() {
			assert.Empty(t, d.Value(f), f.String())
		}
		assert.False(t, d.CanAdvance(order.Addresses))
		assert.False(t, d.CanAdvance(order.Package))
	})

	t.Run("should fail validation for zero value draft", func(t *testing.T) {
		var d order.Draft

		require.ErrorIs(t, d.Validate(), order.ErrDraftIsNotConstructed)
	})

	t.Run("should fail validation for nil draft", func(t *testing.T) {
		var d *order.Draft

		require.ErrorIs(t, d.Validate(), order.ErrDraftIsNotConstructed)
	})
}

func TestDraft_SetField(t *testing.T) {
	t.Run("should overwrite previous value", func(t *testing.T) {
		d := order.NewDraft()

		require.NoError(t, d.SetField(order.SenderName, "John Doe"))
		require.NoError(t, d.SetField(order.SenderName, "Jane Doe"))

		assert.Equal(t, "Jane Doe", d.Value(order.SenderName))
	})

	t.Run("should accept any value including empty", func(t *testing.T) {
		d := order.NewDraft()

		require.NoError(t, d.SetField(order.Notes, "leave at door\nring twice"))
		require.NoError(t, d.SetField(order.Notes, ""))

		assert.Empty(t, d.Value(order.Notes))
	})

	t.Run("should reject unknown field", func(t *testing.T) {
		d := order.NewDraft()

		require.Error(t, d.SetField(order.UnknownField, "x"))
	})
}

// Every combination of the four address-step fields.
func TestDraft_CanAdvanceAddresses_Lattice(t *testing.T) {
	gate := []order.Field{order.SenderName, order.SenderAddress, order.RecipientAddress, order.RecipientName}

	for mask := range 1 << len(gate) {
		d := order.NewDraft()
		for i, f := range gate {
			if mask&(1<<i) != 0 {
				require.NoError(t, d.SetField(f, "value"))
			}
		}
		// fields outside the gate never matter
		require.NoError(t, d.SetField(order.SenderPhone, "+1 555"))
		require.NoError(t, d.SetField(order.RecipientPhone, "+1 555"))

		want := mask == (1<<len(gate))-1
		assert.Equal(t, want, d.CanAdvance(order.Addresses), "mask %04b", mask)
	}
}

func TestDraft_CanAdvancePackage(t *testing.T) {
	cases := []struct {
		name        string
		description string
		weight      string
		want        bool
	}{
		{"both present", "Electronics", "2.5 lbs", true},
		{"description missing", "", "2.5 lbs", false},
		{"weight missing", "Electronics", "", false},
		{"both missing", "", "", false},
		{"whitespace counts as blank", "   ", "2.5 lbs", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := order.NewDraft()
			require.NoError(t, d.SetField(order.PackageDescription, tc.description))
			require.NoError(t, d.SetField(order.PackageWeight, tc.weight))
			require.NoError(t, d.SetField(order.PackageDimensions, "10x8x4"))

			assert.Equal(t, tc.want, d.CanAdvance(order.Package))
		})
	}
}

func TestDraft_Freeze(t *testing.T) {
	d := order.NewDraft()
	require.NoError(t, d.SetField(order.RecipientAddress, "456 Oak Ave"))

	frozen := d.Freeze()
	require.NoError(t, d.SetField(order.RecipientAddress, "789 Pine Rd"))

	assert.Equal(t, "456 Oak Ave", frozen.RecipientAddress)
	assert.Equal(t, "789 Pine Rd", d.Value(order.RecipientAddress))
}
