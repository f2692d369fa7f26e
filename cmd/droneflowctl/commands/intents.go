package commands

import (
	httpin "droneflow/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

// simpleCmd posts an intent without arguments.
func simpleCmd(use, short, intent string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, httpin.IntentRequest{Type: intent})
		},
	}
}

// set <field> <value>
func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set one draft field (senderName, deliveryAddress, packageWeight, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, httpin.IntentRequest{Type: "setField", Field: args[0], Value: args[1]})
		},
	}
}

// promo <code>
func promoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promo <code>",
		Short: "Apply a promo code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, httpin.IntentRequest{Type: "applyPromo", Code: args[0]})
		},
	}
}

// send [amount] [address]: blank arguments fall back to the send form, --save
// only stores them in the form.
func sendCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "send [amount] [address]",
		Short: "Send funds from the connected wallet",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := httpin.IntentRequest{Type: "sendFunds"}
			if save {
				req.Type = "editSendForm"
			}
			if len(args) > 0 {
				req.Amount = args[0]
			}
			if len(args) > 1 {
				req.Address = args[1]
			}
			return dispatch(cmd, req)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "only fill in the send form")
	return cmd
}

func dispatch(cmd *cobra.Command, req httpin.IntentRequest) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	snapshot, err := api.Dispatch(ctx, req)
	if snapshot.Version > 0 {
		if printErr := printSnapshot(cmd.OutOrStdout(), snapshot); printErr != nil {
			return printErr
		}
	}
	return err
}
