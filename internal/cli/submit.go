package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
)

func newSubmitCmd() *cobra.Command {
	var (
		title        string
		description  string
		priority     string
		capabilities []string
		file         string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a task to the orchestrator",
		Long: `Submit a task from flags or from a YAML file.

Example file:
  title: Summarize quarterly sales
  description: Produce a two-paragraph summary
  priority: high
  requirements:
    capabilities: [data_analysis]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sub api.TaskSubmission

			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading task file: %w", err)
				}
				if err := yaml.Unmarshal(data, &sub); err != nil {
					return fmt.Errorf("parsing task file: %w", err)
				}
			}

			// Flags override file fields.
			if title != "" {
				sub.Title = title
			}
			if description != "" {
				sub.Description = description
			}
			if priority != "" {
				sub.Priority = priority
			}
			if len(capabilities) > 0 {
				sub.Requirements.Capabilities = capabilities
			}

			if strings.TrimSpace(sub.Title) == "" {
				return fmt.Errorf("a task needs a title (--title or a file with one)")
			}
			if sub.Priority == "" {
				sub.Priority = api.PriorityMedium
			}
			if len(sub.Requirements.Capabilities) == 0 {
				sub.Requirements.Capabilities = []string{"general"}
			}
			if sub.InputData == nil {
				sub.InputData = map[string]any{}
			}

			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd, cfg)
			defer cancel()

			result, err := client.SubmitTask(ctx, sub)
			if err != nil {
				return fmt.Errorf("submitting task: %w", err)
			}
			if !result.Success {
				reason := result.Error
				if reason == "" {
					reason = "rejected by backend"
				}
				return fmt.Errorf("task rejected: %s", reason)
			}

			return formatter().Output(result, func(w io.Writer) error {
				fmt.Fprintf(w, "Task #%d submitted.\n", result.TaskID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "task title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority: low, medium, high, critical")
	cmd.Flags().StringSliceVarP(&capabilities, "capability", "c", nil, "required capability (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file describing the task")
	return cmd
}
