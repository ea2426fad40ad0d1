package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/output"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
)

// terminalTitleWidth sizes the free-text column from the terminal width,
// leaving room for the fixed columns.
func terminalTitleWidth() int {
	w := output.TerminalWidth() - 45
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}

func newAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd, cfg)
			defer cancel()

			agents, err := client.Agents(ctx)
			if err != nil {
				return fmt.Errorf("fetching agents: %w", err)
			}

			return formatter().Output(agents, func(w io.Writer) error {
				if len(agents) == 0 {
					fmt.Fprintln(w, "No agents registered.")
					return nil
				}

				nameW := terminalTitleWidth()
				fmt.Fprintf(w, "%-5s %-*s %-9s %s\n", "ID", nameW, "NAME", "STATUS", "CAPABILITIES")
				for _, agent := range agents {
					fmt.Fprintf(w, "%-5d %-*s %-9s %s\n",
						agent.ID,
						nameW, layout.TruncateWidth(agent.Name, nameW),
						agent.Status,
						strings.Join(agent.Capabilities, ", "))
				}
				return nil
			})
		},
	}
}
