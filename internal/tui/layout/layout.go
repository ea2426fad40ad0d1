// Package layout holds the width tiers and truncation helpers shared by
// the dashboard panels and the one-shot CLI tables.
package layout

import "github.com/mattn/go-runewidth"

// Width tiers keep panel behavior predictable from narrow laptops up to
// wide monitors.
//
// Tier semantics:
//   - TierNarrow (<100): panels stack vertically, minimal columns
//   - TierSplit (100-159): status and chart share a row, task table gains
//     the agent column
//   - TierWide (>=160): three-panel top row, full metadata columns
const (
	SplitViewThreshold = 100
	WideViewThreshold  = 160
)

// Tier describes the current width bucket.
type Tier int

const (
	TierNarrow Tier = iota
	TierSplit
	TierWide
)

// TierForWidth maps a terminal width to a tier.
func TierForWidth(width int) Tier {
	switch {
	case width >= WideViewThreshold:
		return TierWide
	case width >= SplitViewThreshold:
		return TierSplit
	default:
		return TierNarrow
	}
}

// TruncateRunes trims a string to max runes and appends suffix if it was
// truncated. Rune-aware so multi-byte glyphs never split.
func TruncateRunes(s string, max int, suffix string) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < len([]rune(suffix)) {
		return string(runes[:max])
	}
	return string(runes[:max-len([]rune(suffix))]) + suffix
}

// Truncate is the preferred truncation helper: rune-aware with the
// single-character ellipsis "…" (U+2026).
func Truncate(s string, max int) string {
	return TruncateRunes(s, max, "…")
}

// TruncateWidth trims a string to a display width in terminal cells,
// accounting for wide East Asian glyphs, and appends "…" if truncated.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads a string with spaces to an exact display width,
// truncating first if it is too wide.
func PadRight(s string, width int) string {
	s = TruncateWidth(s, width)
	return runewidth.FillRight(s, width)
}

// SplitProportions returns left/right widths for a two-panel row given
// the total width. A small budget is removed for borders and padding.
func SplitProportions(total int) (left, right int) {
	if total < SplitViewThreshold {
		return total, 0
	}
	avail := total - 4
	if avail < 10 {
		avail = total
	}
	left = avail / 2
	right = avail - left
	return
}

// TripleProportions returns widths for the three-panel top row used at
// TierWide (status / chart / agents).
func TripleProportions(total int) (left, center, right int) {
	if total < WideViewThreshold {
		return 0, total, 0
	}
	avail := total - 6
	if avail < 10 {
		return 0, total, 0
	}
	left = avail * 30 / 100
	right = avail * 30 / 100
	center = avail - left - right
	return
}
