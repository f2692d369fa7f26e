package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"droneflow/internal/core/application/workflow"
	"droneflow/internal/core/domain/model/wallet"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current workflow snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			snapshot, err := api.Workflow(ctx)
			if err != nil {
				return err
			}
			return printSnapshot(cmd.OutOrStdout(), snapshot)
		},
	}
}

func notificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "List recent notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			notifications, err := api.Notifications(ctx)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), notifications)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, n := range notifications {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.At.Format("15:04:05"), n.Kind, n.Title, n.Message)
			}
			return w.Flush()
		},
	}
}

func printSnapshot(out io.Writer, s workflow.Snapshot) error {
	if asJSON {
		return printJSON(out, s)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "step\t%s (can advance: %t)\n", s.Step, s.CanAdvance)
	fmt.Fprintf(w, "price\t%s - %s = %s %s\n", s.Price.Subtotal, s.Price.Discount, s.Price.Total, s.Price.Currency)
	fmt.Fprintf(w, "wallet\t%s %s\n", s.Wallet.Status, s.Wallet.Address)
	if s.Wallet.Status == wallet.Connected {
		fmt.Fprintf(w, "balance\t%s %s\n", s.Wallet.Balance, s.Wallet.Currency)
	}
	fmt.Fprintf(w, "payment\t%s\n", s.Payment.Status)
	if t := s.Tracking; t != nil {
		fmt.Fprintf(w, "tracking\t#%s %s %d%%\n", t.OrderID.Short(), t.Stage, t.ProgressPercent)
	}
	return w.Flush()
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
