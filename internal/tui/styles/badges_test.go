package styles

import (
	"strings"
	"testing"
)

func TestTaskStatusBadgeLabels(t *testing.T) {
	cases := map[string]string{
		"pending":     "pending",
		"in_progress": "running",
		"completed":   "done",
		"failed":      "failed",
		"mystery":     "mystery",
	}
	for status, label := range cases {
		if got := TaskStatusBadge(status); !strings.Contains(got, label) {
			t.Errorf("badge for %q should contain %q, got %q", status, label, got)
		}
	}
}

func TestAgentStatusBadgeLabels(t *testing.T) {
	for status, label := range map[string]string{
		"idle":    "idle",
		"busy":    "busy",
		"offline": "offline",
	} {
		if got := AgentStatusBadge(status); !strings.Contains(got, label) {
			t.Errorf("badge for %q should contain %q, got %q", status, label, got)
		}
	}
}

func TestPriorityBadgeNormalizesCase(t *testing.T) {
	if got := PriorityBadge("HIGH"); !strings.Contains(got, "high") {
		t.Errorf("priority labels render lowercase, got %q", got)
	}
}

func TestHealthBadge(t *testing.T) {
	if got := HealthBadge("operational"); !strings.Contains(got, "operational") {
		t.Errorf("unexpected health badge %q", got)
	}
	if got := HealthBadge("unreachable"); !strings.Contains(got, "unreachable") {
		t.Errorf("unexpected health badge %q", got)
	}
}

func TestBadgeGroup(t *testing.T) {
	got := BadgeGroup("a", "b", "c")
	if got != "a b c" {
		t.Errorf("unexpected group %q", got)
	}
}
