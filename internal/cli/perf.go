package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

func newPerfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perf",
		Short: "Show the orchestrator's performance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd, cfg)
			defer cancel()

			report, err := client.PerformanceReport(ctx)
			if err != nil {
				return fmt.Errorf("fetching performance report: %w", err)
			}

			return formatter().Output(report, func(w io.Writer) error {
				keys := make([]string, 0, len(report))
				for k := range report {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(w, "%-28s %v\n", k, report[k])
				}
				return nil
			})
		},
	}
}
