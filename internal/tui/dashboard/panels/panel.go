// Package panels holds the dashboard's render regions. Panels are pure
// views: the dashboard model owns the data and pushes reconciled slices
// into each panel before rendering.
package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// PanelConfig identifies a panel and its minimum footprint.
type PanelConfig struct {
	ID        string
	Title     string
	MinWidth  int
	MinHeight int
}

// PanelBase provides the shared sizing, focus, and frame plumbing.
// Embed it in concrete panel types.
type PanelBase struct {
	config     PanelConfig
	width      int
	height     int
	focused    bool
	lastUpdate time.Time
}

// NewPanelBase creates a PanelBase with the given config.
func NewPanelBase(cfg PanelConfig) PanelBase {
	return PanelBase{config: cfg}
}

// SetSize sets the panel's outer dimensions.
func (b *PanelBase) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Focus marks the panel as focused.
func (b *PanelBase) Focus() { b.focused = true }

// Blur marks the panel as unfocused.
func (b *PanelBase) Blur() { b.focused = false }

// IsFocused reports whether the panel is focused.
func (b *PanelBase) IsFocused() bool { return b.focused }

// Config returns the panel's configuration.
func (b *PanelBase) Config() PanelConfig { return b.config }

// Width returns the current outer width.
func (b *PanelBase) Width() int { return b.width }

// Height returns the current outer height.
func (b *PanelBase) Height() int { return b.height }

// LastUpdate returns when data last arrived successfully.
func (b *PanelBase) LastUpdate() time.Time { return b.lastUpdate }

// SetLastUpdate records a successful data update.
func (b *PanelBase) SetLastUpdate(t time.Time) { b.lastUpdate = t }

// InnerWidth is the width available for content inside the frame.
func (b *PanelBase) InnerWidth() int {
	w := b.width - 4
	if w < 0 {
		w = 0
	}
	return w
}

// InnerHeight is the line budget inside the frame, after the header.
func (b *PanelBase) InnerHeight() int {
	h := b.height - 5
	if h < 0 {
		h = 0
	}
	return h
}

// frame wraps body in the panel's border with a centered header. The
// title may carry a trailing badge. Content is fitted to the panel
// height so varying row counts never cause layout jitter.
func (b *PanelBase) frame(title, body string) string {
	t := theme.Current()

	borderColor := t.Surface1
	if b.focused {
		borderColor = t.Primary
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(b.width - 2).
		Height(b.height - 2).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Lavender).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Surface1).
		Width(b.width - 4).
		Align(lipgloss.Center)

	content := headerStyle.Render(title) + "\n" + body
	return boxStyle.Render(FitToHeight(content, b.height-4))
}

// FitToHeight makes content exactly targetHeight lines, truncating if
// too long and padding with blanks if too short.
func FitToHeight(content string, targetHeight int) string {
	if targetHeight <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > targetHeight {
		lines = lines[:targetHeight]
	}
	for len(lines) < targetHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// errorBadge renders the red header badge shown when a region's last
// fetch failed.
func errorBadge() string {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.Red).
		Foreground(t.Base).
		Bold(true).
		Padding(0, 1).
		Render("⚠ error")
}
