package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a one-shot system status snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd, cfg)
			defer cancel()

			snap, err := client.SystemStatus(ctx)
			if err != nil {
				return fmt.Errorf("fetching system status: %w", err)
			}

			return formatter().Output(snap, func(w io.Writer) error {
				fmt.Fprintf(w, "Status:       %s\n", snap.Status)
				fmt.Fprintf(w, "Load:         %.0f%%\n", snap.SystemLoad)
				fmt.Fprintf(w, "Active tasks: %d\n", snap.ActiveTasks)
				fmt.Fprintf(w, "Agents:       %d (%d idle, %d busy)\n",
					snap.TotalAgents, snap.IdleAgents, snap.BusyAgents)
				fmt.Fprintf(w, "Message rate: %.1f msg/min\n", snap.MessageRate)
				if snap.Uptime != "" {
					fmt.Fprintf(w, "Uptime:       %s\n", snap.Uptime)
				}
				if snap.AIAPIStatus != "" {
					fmt.Fprintf(w, "AI API:       %s\n", snap.AIAPIStatus)
					if snap.AIAPIMessage != "" {
						fmt.Fprintf(w, "              %s\n", snap.AIAPIMessage)
					}
				}
				return nil
			})
		},
	}
}
