package dashboard

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/config"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// Run loads configuration, builds the dashboard, and blocks until the
// user quits. Config file edits are picked up live.
func Run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	theme.Apply(cfg.Theme)

	client := api.NewClient(
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithTimeout(cfg.APITimeout()),
	)

	// Connectivity probe. A failure is not fatal: the dashboard starts
	// anyway and shows the unreachable state, but the warning lands on
	// stderr before the alternate screen swallows it.
	probeCtx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout())
	if _, herr := client.Health(probeCtx); herr != nil {
		fmt.Fprintf(os.Stderr, "warning: backend not reachable at %s: %v\n", client.BaseURL(), herr)
	}
	cancel()

	logger, closeLog := cfg.DebugLogger()
	defer closeLog()

	p := tea.NewProgram(New(cfg, client), tea.WithAltScreen())

	// The watcher is best effort: a dashboard without live reload is
	// still a working dashboard.
	if stop, werr := config.Watch(cfgPath, logger, func(c *config.Config) {
		p.Send(configReloadedMsg{Config: c})
	}); werr == nil {
		defer stop()
	}

	_, err = p.Run()
	return err
}
