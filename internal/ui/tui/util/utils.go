package util

import (
	"github.com/mattn/go-runewidth"
)

// TruncateString cuts a string to fit within maxWidth visual width, marking the cut with "..."
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadCenter pads s with spaces on both sides up to width, measured in terminal cells
func PadCenter(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return runewidth.FillLeft(s, runewidth.StringWidth(s)+left) + spaces(gap-left)
}

func spaces(n int) string {
	return runewidth.FillRight("", n)
}
