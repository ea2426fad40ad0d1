// Package cli wires the orchtop command tree. Running the bare command
// starts the dashboard TUI; subcommands offer one-shot, scriptable
// views of the same API.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/config"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/output"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/dashboard"
)

var (
	cfgFile    string
	apiURL     string
	jsonOutput bool

	// Build information, set via ldflags.
	Version = "dev"
	Commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "orchtop",
	Short: "Terminal dashboard for the multi-agent orchestration platform",
	Long: `orchtop is a live terminal dashboard for a multi-agent task
orchestration backend. It polls the orchestrator's HTTP API and shows
system health, a rolling load chart, recent tasks, and the agent
roster. Tasks can be submitted and inspected without leaving the
terminal.

Run without arguments to start the dashboard:
  orchtop

One-shot views for scripts and quick checks:
  orchtop status            # System health snapshot
  orchtop tasks --limit 20  # Recent tasks
  orchtop submit -t "Summarize sales" -c data_analysis`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The flag flows through the same override channel the config
		// loader already honors.
		if apiURL != "" {
			os.Setenv("ORCHTOP_API_URL", apiURL)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboard.Run(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/orchtop/config.toml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "orchestrator API base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON output for one-shot commands")

	rootCmd.AddCommand(
		newStatusCmd(),
		newTasksCmd(),
		newAgentsCmd(),
		newSubmitCmd(),
		newRebalanceCmd(),
		newPerfCmd(),
		newVersionCmd(),
	)
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// newClient builds an API client from config plus flag overrides.
func newClient() (*api.Client, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	client := api.NewClient(
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithTimeout(cfg.APITimeout()),
	)
	return client, cfg, nil
}

// requestContext derives a per-request context from the command.
func requestContext(cmd *cobra.Command, cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cfg.APITimeout())
}

// formatter builds the output formatter for one-shot commands.
func formatter() *output.Formatter {
	return output.New(output.WithFormat(output.DetectFormat(jsonOutput)))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatter().Output(
				map[string]string{"version": Version, "commit": Commit},
				func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "orchtop %s (%s)\n", Version, Commit)
					return err
				},
			)
		},
	}
}
