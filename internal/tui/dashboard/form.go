package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/styles"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

var formPriorities = []string{
	api.PriorityLow,
	api.PriorityMedium,
	api.PriorityHigh,
	api.PriorityCritical,
}

const (
	fieldTitle = iota
	fieldDescription
	fieldCapabilities
	fieldPriority
	numFields
)

// submitForm is the task-submission form shown in the modal slot.
type submitForm struct {
	inputs   [3]textinput.Model
	focus    int
	priority int
	errMsg   string
}

func newSubmitForm() submitForm {
	f := submitForm{priority: 1} // medium

	labels := [3]string{"Summarize quarterly sales data", "What the task should accomplish", "data_analysis, nlp"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 500
		f.inputs[i] = in
	}
	f.inputs[fieldTitle].Focus()
	return f
}

func (f *submitForm) focusField(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// update handles a keystroke. It returns a submission once the form is
// complete and the user confirms.
func (f *submitForm) update(msg tea.Msg) (tea.Cmd, *api.TaskSubmission) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "tab", "down":
		f.focusField((f.focus + 1) % numFields)
		return nil, nil
	case "shift+tab", "up":
		f.focusField((f.focus + numFields - 1) % numFields)
		return nil, nil
	case "left":
		if f.focus == fieldPriority {
			f.priority = (f.priority + len(formPriorities) - 1) % len(formPriorities)
			return nil, nil
		}
	case "right":
		if f.focus == fieldPriority {
			f.priority = (f.priority + 1) % len(formPriorities)
			return nil, nil
		}
	case "enter":
		if sub := f.submission(); sub != nil {
			return nil, sub
		}
		return nil, nil
	}

	if f.focus < len(f.inputs) {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return cmd, nil
	}
	return nil, nil
}

// submission validates the form and builds the request body. A missing
// title blocks submission.
func (f *submitForm) submission() *api.TaskSubmission {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		f.errMsg = "title is required"
		return nil
	}
	f.errMsg = ""

	var caps []string
	for _, c := range strings.Split(f.inputs[fieldCapabilities].Value(), ",") {
		if c = strings.TrimSpace(c); c != "" {
			caps = append(caps, c)
		}
	}
	if len(caps) == 0 {
		caps = []string{"general"}
	}

	return &api.TaskSubmission{
		Title:        title,
		Description:  strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Priority:     formPriorities[f.priority],
		Requirements: api.TaskRequirements{Capabilities: caps},
		InputData:    map[string]any{},
	}
}

func (f *submitForm) view(w int) string {
	t := theme.Current()
	label := lipgloss.NewStyle().Foreground(t.Subtext).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Italic(true)
	dim := lipgloss.NewStyle().Foreground(t.Overlay)

	var b strings.Builder
	fields := [3]string{"Title", "Description", "Capabilities"}
	for i, in := range f.inputs {
		b.WriteString(label.Render(fields[i]) + "\n")
		b.WriteString(in.View() + "\n\n")
	}

	b.WriteString(label.Render("Priority") + "\n")
	var pills []string
	for i, p := range formPriorities {
		if i == f.priority {
			pills = append(pills, styles.PriorityBadge(p))
		} else {
			pills = append(pills, dim.Render(p))
		}
	}
	marker := "  "
	if f.focus == fieldPriority {
		marker = "▸ "
	}
	b.WriteString(marker + styles.BadgeGroup(pills...) + "\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errStyle.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n" + dim.Render(layout.Truncate("tab to move, ←/→ to set priority, enter to submit", w)))
	return b.String()
}
