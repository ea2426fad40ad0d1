package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRebalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebalance",
		Short: "Redistribute pending work across agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd, cfg)
			defer cancel()

			result, err := client.Rebalance(ctx)
			if err != nil {
				return fmt.Errorf("rebalancing: %w", err)
			}
			if !result.Success {
				reason := result.Error
				if reason == "" {
					reason = "backend refused"
				}
				return fmt.Errorf("rebalance failed: %s", reason)
			}

			return formatter().Output(result, func(w io.Writer) error {
				fmt.Fprintf(w, "Reassigned %d tasks.\n", result.Reassigned)
				return nil
			})
		},
	}
}
