package engine

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Market Research Analysis", "Market Research Analysis"},
		{"html stays literal", "<script>alert(1)</script>", "<script>alert(1)</script>"},
		{"ansi color stripped", "\x1b[31mred\x1b[0m task", "red task"},
		{"cursor movement stripped", "a\x1b[2Jb", "ab"},
		{"bare escape stripped", "a\x1bcb", "ab"},
		{"newlines flattened", "line one\nline two", "line one line two"},
		{"tabs flattened", "a\tb", "a b"},
		{"bell dropped", "ding\a", "ding"},
		{"del dropped", "a\x7fb", "ab"},
		{"unicode preserved", "état 状態 ✓", "état 状態 ✓"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeAll(t *testing.T) {
	got := SanitizeAll([]string{"data_analysis", "web\x1b[31m_scraping"})
	if got[0] != "data_analysis" || got[1] != "web_scraping" {
		t.Errorf("unexpected result: %v", got)
	}
}
