// Package icons centralizes the glyphs used across the TUI so terminals
// without good Unicode coverage can fall back to ASCII.
package icons

import (
	"os"
	"strings"
)

// IconSet contains the icons used in the TUI.
type IconSet struct {
	// Status
	Check    string
	Cross    string
	Dot      string
	Circle   string
	Warning  string
	Info     string
	Question string

	// Objects
	Robot  string
	Task   string
	Clock  string
	Chart  string
	Target string

	// Actions
	Send    string
	Refresh string
	Gear    string
	Bolt    string
}

// Unicode is the default icon set.
var Unicode = IconSet{
	Check:    "✓",
	Cross:    "✗",
	Dot:      "●",
	Circle:   "○",
	Warning:  "⚠",
	Info:     "ℹ",
	Question: "?",

	Robot:  "🤖",
	Task:   "◆",
	Clock:  "◔",
	Chart:  "▤",
	Target: "◎",

	Send:    "➤",
	Refresh: "↻",
	Gear:    "⚙",
	Bolt:    "⚡",
}

// ASCII is the degraded set for dumb terminals.
var ASCII = IconSet{
	Check:    "v",
	Cross:    "x",
	Dot:      "*",
	Circle:   "o",
	Warning:  "!",
	Info:     "i",
	Question: "?",

	Robot:  "[a]",
	Task:   "#",
	Clock:  "@",
	Chart:  "=",
	Target: "o",

	Send:    ">",
	Refresh: "~",
	Gear:    "%",
	Bolt:    "!",
}

// Current returns the active icon set. ORCHTOP_ASCII=1 forces the ASCII
// set; otherwise a non-UTF-8 locale selects it.
func Current() IconSet {
	switch strings.TrimSpace(os.Getenv("ORCHTOP_ASCII")) {
	case "1", "true", "yes", "on":
		return ASCII
	}
	lang := strings.ToLower(os.Getenv("LC_ALL") + os.Getenv("LC_CTYPE") + os.Getenv("LANG"))
	if lang != "" && !strings.Contains(lang, "utf-8") && !strings.Contains(lang, "utf8") {
		return ASCII
	}
	return Unicode
}
