package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the display width of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates styled or plain text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if maxWidth <= ansi.StringWidth(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// PadRight pads text with spaces to exactly width cells, truncating if longer.
func PadRight(text string, width int, cfg TextConfig) string {
	text, _ = TruncateText(text, width, cfg)
	if gap := width - ansi.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

// ClampLines wraps text to width and keeps at most n lines, marking the
// last kept line with the ellipsis when text was cut.
func ClampLines(text string, width, n int, cfg TextConfig) []string {
	if n <= 0 || width <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wrap(text, width, ""), "\n")
	if len(lines) <= n {
		return lines
	}
	lines = lines[:n]
	last := strings.TrimRight(lines[n-1], " ")
	room := width - ansi.StringWidth(cfg.Ellipsis)
	if ansi.StringWidth(last) > room {
		last = ansi.Truncate(last, max(0, room), "")
	}
	lines[n-1] = last + cfg.Ellipsis
	return lines
}

// SpreadLine lays out left, center and right parts on one line of the given
// width: left flush left, right flush right, center in the middle of the gap.
// The center part is dropped when it does not fit.
func SpreadLine(left, center, right string, width int) string {
	lw, cw, rw := ansi.StringWidth(left), ansi.StringWidth(center), ansi.StringWidth(right)
	gap := width - lw - rw
	if gap < 0 {
		return ansi.Truncate(left+" "+right, width, "")
	}
	if center == "" || cw > gap-2 {
		return left + strings.Repeat(" ", gap) + right
	}
	before := (gap - cw) / 2
	after := gap - cw - before
	return left + strings.Repeat(" ", before) + center + strings.Repeat(" ", after) + right
}
