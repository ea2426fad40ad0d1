package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
)

func newTasksCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List recent tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.Refresh.TaskLimit
			}
			ctx, cancel := requestContext(cmd, cfg)
			defer cancel()

			tasks, err := client.Tasks(ctx, limit)
			if err != nil {
				return fmt.Errorf("fetching tasks: %w", err)
			}

			return formatter().Output(tasks, func(w io.Writer) error {
				if len(tasks) == 0 {
					fmt.Fprintln(w, "No tasks.")
					return nil
				}

				titleW := terminalTitleWidth()
				fmt.Fprintf(w, "%-5s %-*s %-12s %-9s %s\n",
					"ID", titleW, "TITLE", "STATUS", "PRIORITY", "PROGRESS")
				for _, task := range tasks {
					agent := ""
					if task.AssignedAgentID != nil {
						agent = fmt.Sprintf("  agent #%d", *task.AssignedAgentID)
					}
					fmt.Fprintf(w, "%-5d %-*s %-12s %-9s %5.0f%%%s\n",
						task.ID,
						titleW, layout.TruncateWidth(task.Title, titleW),
						task.Status, task.Priority, task.Progress*100, agent)
				}
				fmt.Fprintf(w, "\n%d tasks\n", len(tasks))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max tasks to list (default from config)")
	return cmd
}
