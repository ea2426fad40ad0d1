package dashboard

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/config"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/engine"
)

func newTestModel() Model {
	cfg := config.Default()
	client := api.NewClient(api.WithBaseURL("http://127.0.0.1:8000/api/v1/"))
	m := New(cfg, client)
	m.width = 120
	m.height = 40
	m.layoutPanels()
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStartCycleIsSingleFlight(t *testing.T) {
	m := newTestModel()

	if cmd := m.startCycle(); cmd == nil {
		t.Fatal("first cycle must issue fetches")
	}
	// All three resources are now outstanding.
	if !m.refreshing() {
		t.Fatal("cycle should be in flight")
	}
	if cmd := m.startCycle(); cmd != nil {
		t.Error("a second cycle must not start while one is in flight")
	}
}

func TestManualRefreshIgnoredWhileInFlight(t *testing.T) {
	m := newTestModel()
	m.startCycle()

	updated, cmd := m.handleKey(keyRunes('r'))
	m = updated.(Model)
	if cmd != nil {
		t.Error("manual refresh must be a no-op while a cycle is running")
	}
}

func TestStatusResultUpdatesPanels(t *testing.T) {
	m := newTestModel()
	seq := m.eng.NextSeq(engine.ResourceStatus)

	updated, _ := m.Update(statusFetchedMsg{
		Seq:      seq,
		Snapshot: &api.SystemStatus{Status: "operational", SystemLoad: 40, ActiveTasks: 2},
		At:       time.Now(),
	})
	m = updated.(Model)

	if !m.eng.Status().HasData {
		t.Fatal("status result should reach the engine")
	}
	if !strings.Contains(m.status.View(), "operational") {
		t.Error("status panel should render the new snapshot")
	}
	if len(m.eng.History()) != 1 {
		t.Error("a successful status fetch contributes one chart sample")
	}
}

func TestFailureNotifiesOnceNotEveryCycle(t *testing.T) {
	m := newTestModel()
	fetchErr := errors.New("connection refused")

	for i := 0; i < 3; i++ {
		seq := m.eng.NextSeq(engine.ResourceStatus)
		updated, _ := m.Update(statusFetchedMsg{Seq: seq, Err: fetchErr, At: time.Now()})
		m = updated.(Model)
	}

	if got := m.queue.Len(); got != 1 {
		t.Errorf("persistent outage should produce one notification, got %d", got)
	}

	// Recovery produces exactly one more.
	seq := m.eng.NextSeq(engine.ResourceStatus)
	updated, _ := m.Update(statusFetchedMsg{
		Seq: seq, Snapshot: &api.SystemStatus{Status: "operational"}, At: time.Now(),
	})
	m = updated.(Model)
	if got := m.queue.Len(); got != 2 {
		t.Errorf("recovery should add one notification, got %d", got)
	}
}

func TestPartialFailureIsolation(t *testing.T) {
	m := newTestModel()

	sSeq := m.eng.NextSeq(engine.ResourceStatus)
	tSeq := m.eng.NextSeq(engine.ResourceTasks)
	aSeq := m.eng.NextSeq(engine.ResourceAgents)

	updated, _ := m.Update(statusFetchedMsg{Seq: sSeq, Snapshot: &api.SystemStatus{Status: "operational"}, At: time.Now()})
	m = updated.(Model)
	updated, _ = m.Update(tasksFetchedMsg{Seq: tSeq, Tasks: []api.Task{{ID: 1, Title: "t"}}})
	m = updated.(Model)
	updated, _ = m.Update(agentsFetchedMsg{Seq: aSeq, Err: errors.New("boom")})
	m = updated.(Model)

	if m.eng.Tasks().State != engine.ListReady {
		t.Error("task region must stay healthy when agents fail")
	}
	if m.eng.Agents().State != engine.ListError {
		t.Error("agent region must show its own failure")
	}
	if !strings.Contains(m.agents.View(), "could not load agents") {
		t.Error("agents panel should render the error placeholder")
	}
}

func TestModalSingleSlot(t *testing.T) {
	var modal Modal
	modal.SetSize(120, 40)

	modal.OpenDetail(api.Task{ID: 1, Title: "first"})
	modal.OpenDetail(api.Task{ID: 2, Title: "second"})
	if modal.taskID != 2 {
		t.Error("opening over an open modal must replace its content")
	}

	modal.OpenSubmit()
	if modal.kind != modalSubmit {
		t.Error("submit form must replace the detail view")
	}

	modal.Close()
	modal.Close() // idempotent
	if modal.IsOpen() {
		t.Error("modal should be closed")
	}
}

func TestModalDropsDetailForOtherTask(t *testing.T) {
	var modal Modal
	modal.OpenDetail(api.Task{ID: 1})

	modal.ApplyDetail(taskDetailMsg{TaskID: 9, Task: api.Task{ID: 9, Title: "other"}})
	if modal.detailLoaded {
		t.Error("detail for a different task must be dropped")
	}

	modal.ApplyDetail(taskDetailMsg{TaskID: 1, Task: api.Task{ID: 1, Title: "mine"}})
	if !modal.detailLoaded || modal.task.Title != "mine" {
		t.Error("detail for the displayed task must apply")
	}
}

func TestDetailModalBodyScrolls(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	m.modal.OpenDetail(api.Task{ID: 3, Title: "big"})
	long := strings.Repeat("Paragraph of analysis.\n\n", 60)
	m.modal.ApplyDetail(taskDetailMsg{TaskID: 3, Task: api.Task{
		ID: 3, Title: "big", Status: api.TaskCompleted, AIResponse: long,
	}})

	// The overlay must fit the terminal even with a response far longer
	// than the screen.
	if h := lipgloss.Height(m.View()); h > m.height {
		t.Errorf("modal view is %d lines for a %d-line terminal", h, m.height)
	}

	before := m.modal.vp.YOffset
	updated, _ = m.handleKey(keyRunes('j'))
	m = updated.(Model)
	if m.modal.vp.YOffset <= before {
		t.Error("j should scroll the detail body")
	}

	updated, _ = m.handleKey(keyRunes('k'))
	m = updated.(Model)
	if m.modal.vp.YOffset != before {
		t.Error("k should scroll back up")
	}
}

func TestWorkingNoticeOnlyWhileInProgress(t *testing.T) {
	var modal Modal
	modal.SetSize(100, 30)

	modal.OpenDetail(api.Task{ID: 1})
	modal.ApplyDetail(taskDetailMsg{TaskID: 1, Task: api.Task{ID: 1, Status: api.TaskPending}})
	if strings.Contains(modal.View(engine.AgentsView{}, 0), "agent working") {
		t.Error("a pending task has no response region")
	}

	modal.ApplyDetail(taskDetailMsg{TaskID: 1, Task: api.Task{ID: 1, Status: api.TaskInProgress}})
	if !strings.Contains(modal.View(engine.AgentsView{}, 0), "agent working") {
		t.Error("a running task shows the working notice")
	}
}

func TestEscClosesModalOnly(t *testing.T) {
	m := newTestModel()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	// Esc with no modal does nothing.
	updated, cmd := m.handleKey(esc)
	m = updated.(Model)
	if cmd != nil {
		t.Error("esc without a modal must not produce a command")
	}

	m.modal.OpenHelp()
	updated, _ = m.handleKey(esc)
	m = updated.(Model)
	if m.modal.IsOpen() {
		t.Error("esc must close the open modal")
	}
}

func TestQuitBlockedInsideSubmitForm(t *testing.T) {
	m := newTestModel()
	m.modal.OpenSubmit()

	// "q" is just a letter inside the form.
	updated, cmd := m.handleKey(keyRunes('q'))
	m = updated.(Model)
	if cmd != nil {
		if _, isQuit := cmd().(tea.QuitMsg); isQuit {
			t.Error("typing q in the form must not quit")
		}
	}
	if !m.modal.InSubmitForm() {
		t.Error("form must stay open")
	}
	if got := m.modal.form.inputs[fieldTitle].Value(); got != "q" {
		t.Errorf("the keystroke should land in the focused field, got %q", got)
	}
}

func TestCursorKeysReachTasksPanel(t *testing.T) {
	m := newTestModel()
	seq := m.eng.NextSeq(engine.ResourceTasks)
	updated, _ := m.Update(tasksFetchedMsg{Seq: seq, Tasks: []api.Task{{ID: 1}, {ID: 2}}})
	m = updated.(Model)

	updated, _ = m.handleKey(keyRunes('j'))
	m = updated.(Model)
	if task, _ := m.tasks.Selected(); task.ID != 2 {
		t.Errorf("j should move the selection down, got task %d", task.ID)
	}
}

func TestSubmitResultClosesModalAndNotifies(t *testing.T) {
	m := newTestModel()
	m.modal.OpenSubmit()

	updated, cmd := m.Update(submitResultMsg{Result: api.SubmitResult{Success: true, TaskID: 5}})
	m = updated.(Model)
	if m.modal.IsOpen() {
		t.Error("successful submission must close the form")
	}
	if cmd == nil {
		t.Error("submission outcome should schedule a toast expiry and a refresh")
	}
	visible := m.queue.Visible()
	if len(visible) != 1 || !strings.Contains(visible[0].Message, "task #5 submitted") {
		t.Errorf("expected submission toast, got %+v", visible)
	}
}

func TestSubmitRejectionKeepsReason(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(submitResultMsg{Result: api.SubmitResult{Success: false, Error: "missing capability"}})
	m = updated.(Model)

	visible := m.queue.Visible()
	if len(visible) != 1 || !strings.Contains(visible[0].Message, "missing capability") {
		t.Errorf("rejection reason must surface in the toast, got %+v", visible)
	}
}

func TestToastExpiry(t *testing.T) {
	m := newTestModel()
	n := m.queue.Push("bye", 0, time.Now().Add(-time.Minute))

	updated, _ := m.Update(toastExpireMsg{ID: n.ID})
	m = updated.(Model)
	if m.queue.Len() != 0 {
		t.Error("expiry message must remove the notification")
	}
}

func TestConfigReloadSwapsClient(t *testing.T) {
	m := newTestModel()
	oldClient := m.client

	next := config.Default()
	next.API.BaseURL = "http://elsewhere:9000/api/v1/"
	updated, _ := m.Update(configReloadedMsg{Config: next})
	m = updated.(Model)

	if m.client == oldClient {
		t.Error("a reload with a new base URL must rebuild the client")
	}
	if m.cfg.API.BaseURL != next.API.BaseURL {
		t.Error("config must be replaced")
	}
}

func TestConfigReloadAppliesChartAndToastSettings(t *testing.T) {
	m := newTestModel()
	for i := 0; i < 5; i++ {
		seq := m.eng.NextSeq(engine.ResourceStatus)
		updated, _ := m.Update(statusFetchedMsg{
			Seq:      seq,
			Snapshot: &api.SystemStatus{Status: "online", SystemLoad: float64(i)},
			At:       time.Now(),
		})
		m = updated.(Model)
	}

	next := config.Default()
	next.Chart.WindowSize = 2
	next.Notifications.DurationSeconds = 9
	updated, _ := m.Update(configReloadedMsg{Config: next})
	m = updated.(Model)

	if m.eng.WindowCap() != 2 {
		t.Errorf("window cap should follow the reload, got %d", m.eng.WindowCap())
	}
	if got := len(m.eng.History()); got != 2 {
		t.Errorf("window should shrink to the reloaded size, got %d samples", got)
	}
	if m.queue.Duration() != 9*time.Second {
		t.Errorf("toast duration should follow the reload, got %v", m.queue.Duration())
	}
}

func TestResolveAgent(t *testing.T) {
	id := 3
	roster := engine.AgentsView{State: engine.ListReady, Agents: []api.Agent{{ID: 3, Name: "MathAgent"}}}

	if got := resolveAgent(nil, roster); got != "unassigned" {
		t.Errorf("nil id is unassigned, got %q", got)
	}
	if got := resolveAgent(&id, roster); got != "MathAgent" {
		t.Errorf("expected resolved name, got %q", got)
	}
	if got := resolveAgent(&id, engine.AgentsView{State: engine.ListError}); got != "agent #3" {
		t.Errorf("unavailable roster degrades to the bare id, got %q", got)
	}
}

func TestSubmitFormValidation(t *testing.T) {
	f := newSubmitForm()

	if sub := f.submission(); sub != nil {
		t.Fatal("empty title must block submission")
	}
	if f.errMsg == "" {
		t.Error("validation failure should set an error message")
	}

	f.inputs[fieldTitle].SetValue("Analyze churn")
	f.inputs[fieldCapabilities].SetValue("data_analysis, , nlp")
	sub := f.submission()
	if sub == nil {
		t.Fatal("valid form must produce a submission")
	}
	if sub.Priority != api.PriorityMedium {
		t.Errorf("default priority is medium, got %q", sub.Priority)
	}
	if len(sub.Requirements.Capabilities) != 2 {
		t.Errorf("capabilities must be trimmed and filtered, got %v", sub.Requirements.Capabilities)
	}
}
