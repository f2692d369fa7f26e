package commands

import (
	"context"
	"time"

	"droneflow/internal/client"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
	asJSON    bool

	api *client.Client
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "droneflowctl",
		Short:        "Drive the drone delivery workflow from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			api = client.New(serverURL)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "http://127.0.0.1:8080", "server base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON")

	root.AddCommand(
		statusCmd(),
		setCmd(),
		simpleCmd("next", "Advance to the next step", "advanceStep"),
		simpleCmd("back", "Go back one step", "retreatStep"),
		promoCmd(),
		simpleCmd("confirm", "Confirm and pay for the draft", "confirmPayment"),
		simpleCmd("connect", "Connect the wallet", "connectWallet"),
		simpleCmd("disconnect", "Disconnect the wallet", "disconnectWallet"),
		sendCmd(),
		simpleCmd("cancel", "Discard the draft and any pending payment", "cancelOrder"),
		simpleCmd("new", "Start a new order after hand-off", "startNewOrder"),
		simpleCmd("advance", "Move the tracked delivery one stage forward", "advanceTracking"),
		notificationsCmd(),
	)
	return root
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
